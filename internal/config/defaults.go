package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "delivery",
	Pass: "delivery",
	Name: "delivery_ops",
}

var defaultRedis = Redis{
	Addr:        "127.0.0.1:6379",
	DB:          0,
	SnapshotTTL: 5 * time.Minute,
}

var defaultKafka = Kafka{
	OrdersTopic: "orders.events",
	GroupID:     "delivery-ops",
	StatusTopic: "delivery.status",
}

var defaultUsersGateway = UsersGateway{
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultRateLimit = RateLimit{
	Limit:  100,
	Window: time.Second,
}

var defaultDelivery = Delivery{
	OperationTimeout: 3 * time.Second,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultRedis returns the default redis settings.
func DefaultRedis() Redis {
	return defaultRedis
}

// DefaultKafka returns the default kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultUsersGateway returns the default users gateway settings.
func DefaultUsersGateway() UsersGateway {
	return defaultUsersGateway
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultDelivery returns the default delivery settings.
func DefaultDelivery() Delivery {
	return defaultDelivery
}
