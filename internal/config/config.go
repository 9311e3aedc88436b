package config

import (
	"flag"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}
type RabbitCfg struct {
	URL string `mapstructure:"url"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
type SecurityCfg struct {
	HMACSecret string `mapstructure:"hmacSecret"`
}

// BatchCfg 批处理参数
type BatchCfg struct {
	WorkerCount      int `mapstructure:"workerCount"`      // 工作协程数
	TxTimeoutSec     int `mapstructure:"txTimeoutSec"`     // 单笔交易处理时限
	PersistRetries   int `mapstructure:"persistRetries"`   // 台账写入重试次数
	PersistBackoffMs int `mapstructure:"persistBackoffMs"` // 首次重试间隔
}

type LedgerCfg struct {
	ShardsPerMonth int `mapstructure:"shardsPerMonth"`
}

type Root struct {
	Server      ServerCfg   `mapstructure:"server"`
	MysqlMain   MysqlCfg    `mapstructure:"mysql_main"`
	MysqlLedger MysqlCfg    `mapstructure:"mysql_ledger"`
	RabbitMQ    RabbitCfg   `mapstructure:"rabbitmq"`
	Redis       RedisCfg    `mapstructure:"redis"`
	Security    SecurityCfg `mapstructure:"security"`
	Batch       BatchCfg    `mapstructure:"batch"`
	Ledger      LedgerCfg   `mapstructure:"ledger"`
}

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	v := viper.New()
	v.SetConfigFile("config/config." + *env + ".yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config file failed: %v", err)
	}
	if err := v.Unmarshal(&C); err != nil {
		log.Fatalf("unmarshal config failed: %v", err)
	}

	// sane defaults
	if strings.TrimSpace(C.Server.Port) == "" {
		C.Server.Port = "8080"
	}
	if C.Batch.WorkerCount <= 0 {
		C.Batch.WorkerCount = 8
	}
	if C.Batch.TxTimeoutSec <= 0 {
		C.Batch.TxTimeoutSec = 5
	}
	if C.Batch.PersistRetries <= 0 {
		C.Batch.PersistRetries = 3
	}
	if C.Batch.PersistBackoffMs <= 0 {
		C.Batch.PersistBackoffMs = 100
	}
	if C.Ledger.ShardsPerMonth <= 0 {
		C.Ledger.ShardsPerMonth = 4
	}
}
