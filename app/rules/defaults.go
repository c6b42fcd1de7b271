package rules

// Defaults returns the built-in rule set. It is used as-is when no rules file
// is configured and fills the gaps of a partial one.
func Defaults() *Rules {
	return &Rules{
		Groups: []Group{
			{Name: "Габариты и вес", Keywords: []string{
				"габарит", "размер", "вес", "масса", "ширина", "высота", "глубина", "длина", "толщина"}},
			{Name: "Технические характеристики", Keywords: []string{
				"мощность", "напряжение", "ток", "частота", "потребление", "энергопотребление",
				"ампер", "вольт", "ватт", "квт", "ква"}},
			{Name: "Управление", Keywords: []string{
				"управление", "термостат", "таймер", "дисплей", "сенсор", "кнопк", "пульт",
				"регулятор", "переключатель"}},
			{Name: "Безопасность", Keywords: []string{
				"защита", "безопасность", "ip", "влагозащита", "пылезащита", "аварийное",
				"перегрев", "опрокидывание", "заземление", "изоляция"}},
			{Name: "Монтаж и подключение", Keywords: []string{
				"установка", "крепление", "монтаж", "кабель", "вилка", "подключение",
				"кронштейн", "крепёж", "анкер", "дюбель"}},
			{Name: "Комплектация", Keywords: []string{
				"комплект", "в комплекте", "крепеж", "аксессуар", "комплектация",
				"дополнительно", "принадлежность"}},
			{Name: "Внешний вид", Keywords: []string{
				"цвет", "материал", "отделка", "поверхность", "дизайн", "форма",
				"внешний вид", "оттенок", "фактура"}},
			{Name: "Эксплуатация", Keywords: []string{
				"применение", "назначение", "область", "площадь", "эффективен",
				"использование", "эксплуатация", "помещение"}},
			{Name: "Общие сведения", Keywords: []string{
				"гарантия", "срок", "служба", "производство", "страна", "серия",
				"бренд", "артикул", "модель", "тип"}},
		},
		DefaultGroup: "Другие характеристики",

		Attributes: []Attribute{
			{Key: "Цвет корпуса", Slug: "pa_color"},
			{Key: "Материал корпуса", Slug: "pa_material"},
			{Key: "Мощность", Slug: "pa_power"},
			{Key: "Страна производства", Slug: "pa_country"},
			{Key: "Тип установки", Slug: "pa_installation-type"},
			{Key: "Область применения", Slug: "pa_application"},
			{Key: "Габариты", Slug: "pa_dimensions"},
		},
		DimensionsSlug: "pa_dimensions",

		ExtractFields: map[string][]string{
			"weight": {"Вес товара", "Масса товара", "Вес"},
			"width":  {"Ширина товара", "Ширина"},
			"height": {"Высота товара", "Высота"},
			"length": {"Длина товара", "Длина", "Глубина товара", "Глубина"},
		},

		DisplayBooleans: map[string]string{
			"yes":   "Да",
			"true":  "Да",
			"no":    "Нет",
			"false": "Нет",
		},
		AttributeBooleans: map[string]string{
			"да":    "yes",
			"нет":   "no",
			"yes":   "yes",
			"no":    "no",
			"true":  "yes",
			"false": "no",
		},
		AffirmativeToken: "да",

		Info: InfoFields{
			CodeField:      "НС-код",
			BarcodeField:   "Штрих код",
			ExclusiveField: "Эксклюзив",
		},

		DocTypes: []DocType{
			{Name: "Чертежи", Title: "Чертежи и схемы", LinkWord: "Чертеж"},
			{Name: "Инструкции", Title: "Инструкции по эксплуатации", LinkWord: "Инструкция"},
			{Name: "Сертификаты", Title: "Сертификаты", LinkWord: "Сертификат"},
			{Name: "Промоматериалы", Title: "Промо-материалы", LinkWord: "Промо-материал"},
			{Name: "Видео", Title: "Видеоматериалы", LinkWord: "Видео"},
		},
		DefaultLinkWord: "Документ",

		IconsPath:   "/wp-content/uploads/icons/",
		DefaultIcon: "document-icon.png",
		FileIcons: map[string]string{
			".pdf":  "pdf-icon.png",
			".doc":  "word-icon.png",
			".docx": "word-icon.png",
			".xls":  "excel-icon.png",
			".xlsx": "excel-icon.png",
			".rar":  "archive-icon.png",
			".zip":  "archive-icon.png",
			".7z":   "archive-icon.png",
			".mp4":  "video-icon.png",
			".avi":  "video-icon.png",
			".mov":  "video-icon.png",
		},
		FileLabels: map[string]string{
			".pdf":  " (PDF)",
			".doc":  " (DOC)",
			".docx": " (DOCX)",
			".xls":  " (XLS)",
			".xlsx": " (XLS)",
			".rar":  " (Архив RAR)",
			".zip":  " (Архив ZIP)",
			".7z":   " (Архив 7Z)",
			".mp4":  " (Видео MP4)",
			".avi":  " (Видео AVI)",
			".mov":  " (Видео MOV)",
		},

		ExcerptMaxLength: 200,
	}
}
