package cmd

// Config carries all environment-provided settings.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string
	RabbitMQVHost    string

	// KafkaBrokers is a comma-separated broker list.
	KafkaBrokers           string
	KafkaOrderChangedTopic string

	SmsGatewayURL    string
	SmsGatewayAPIKey string
	SmsSenderID      string

	// RiderStaleAfter is a Go duration string; riders silent for longer are
	// taken off the available pool by the liveness sweep.
	RiderStaleAfter string
	// RiderSweepSchedule is a five-field cron expression for the sweep.
	RiderSweepSchedule string
}
