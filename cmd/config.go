package cmd

// Event broker names accepted in EVENT_BROKER.
const (
	EventBrokerNone     = "none"
	EventBrokerNats     = "nats"
	EventBrokerRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	EventBroker           string
	NatsURL               string
	RabbitMQURL           string
	RabbitMQExchange      string
	KitchenReportSchedule string
}
