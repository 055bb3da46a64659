package redis

type CfgRedis struct {
	EnableTLS     bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

var configData CfgRedis

func LoadConfig(config *CfgRedis) {
	configData = *config
}
