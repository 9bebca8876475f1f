package cmd

// Config carries the process-level settings read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OvenCapacity is the number of units the shared oven bakes at once.
	OvenCapacity int
}
