package cfg

type Cfg struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Application configuration
	RulesFile    string
	Port         string
	RedisAddr    string
	WorkerCount  int
	APIAccessKey string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
