package main

import (
	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/pkg/rabbitmq"
)

type ApiConfigJson struct {
	LoggerConf     logger.LoggerConfigJson     `json:"logger"`
	RabbitmqConf   rabbitmq.RabbitmqConfigJson `json:"rabbitmq"`
	RestConf       ApiRestConfigJson           `json:"rest"`
	DatabaseConf   ApiDatabaseConfigJson       `json:"database"`
	EncryptionConf ApiEncryptionConfigJson     `json:"encryption"`
	AuthConf       ApiAuthConfigJson           `json:"auth"`
}

func (acj ApiConfigJson) ConvertToDomain() ApiConfig {
	return ApiConfig{
		LoggerConf:     acj.LoggerConf.ConvertToDomain(),
		RabbitmqConf:   acj.RabbitmqConf.ConvertToDomain(),
		RestConf:       acj.RestConf.ConvertToDomain(),
		DatabaseConf:   acj.DatabaseConf.ConvertToDomain(),
		EncryptionConf: acj.EncryptionConf.ConvertToDomain(),
		AuthConf:       acj.AuthConf.ConvertToDomain(),
	}
}

type ApiConfig struct {
	LoggerConf     logger.LoggerConfig
	RabbitmqConf   rabbitmq.RabbitmqConfig
	RestConf       ApiRestConfig
	DatabaseConf   ApiDatabaseConfig
	EncryptionConf ApiEncryptionConfig
	AuthConf       ApiAuthConfig
}

func (ac ApiConfig) GetLoggerConfig() logger.LoggerConfig {
	return ac.LoggerConf
}

func (ac ApiConfig) GetRabbitmqConfig() rabbitmq.RabbitmqConfig {
	return ac.RabbitmqConf
}

func (ac ApiConfig) GetRestApiPort() uint16 {
	return ac.RestConf.Port
}

func (ac ApiConfig) GetDatabaseConnectionString() string {
	return ac.DatabaseConf.ConnectionString
}

type ApiRestConfigJson struct {
	Port          uint16 `json:"port"`
	AllowedOrigin string `json:"allowed_origin"`
}

type ApiRestConfig struct {
	Port          uint16
	AllowedOrigin string
}

func (arcj ApiRestConfigJson) ConvertToDomain() ApiRestConfig {
	return ApiRestConfig{
		Port:          arcj.Port,
		AllowedOrigin: arcj.AllowedOrigin,
	}
}

type ApiDatabaseConfigJson struct {
	ConnectionString string `json:"connection_string"`
}

type ApiDatabaseConfig struct {
	ConnectionString string
}

func (adcj ApiDatabaseConfigJson) ConvertToDomain() ApiDatabaseConfig {
	return ApiDatabaseConfig{
		ConnectionString: adcj.ConnectionString,
	}
}

// ApiEncryptionConfigJson carries the hex-encoded 32 byte key used for
// service instance config blobs.
type ApiEncryptionConfigJson struct {
	KeyHex string `json:"key_hex"`
}

type ApiEncryptionConfig struct {
	KeyHex string
}

func (aecj ApiEncryptionConfigJson) ConvertToDomain() ApiEncryptionConfig {
	return ApiEncryptionConfig{
		KeyHex: aecj.KeyHex,
	}
}

type ApiAuthConfigJson struct {
	JwtSigningKey string `json:"jwt_signing_key"`
}

type ApiAuthConfig struct {
	JwtSigningKey string
}

func (aacj ApiAuthConfigJson) ConvertToDomain() ApiAuthConfig {
	return ApiAuthConfig{
		JwtSigningKey: aacj.JwtSigningKey,
	}
}
