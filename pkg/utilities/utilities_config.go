package utilities

import (
	"encoding/json"
	"os"
)

// JsonConfigObj is the on-disk JSON shape of a config section. Each shape
// converts itself into the domain type the application works with.
type JsonConfigObj[T any] interface {
	ConvertToDomain() T
}

// ReadConfig unmarshals a JSON file into the raw shape T and returns its
// domain conversion.
func ReadConfig[T JsonConfigObj[U], U any](file string) (U, error) {
	var empty U

	fileContent, err := os.ReadFile(file)
	if err != nil {
		return empty, err
	}

	var config T
	err = json.Unmarshal(fileContent, &config)
	if err != nil {
		return empty, err
	}

	return config.ConvertToDomain(), nil
}

// ConvertJsonArrayToDomain converts each raw shape in jsonArray to its
// domain type.
func ConvertJsonArrayToDomain[T JsonConfigObj[U], U any](jsonArray []T) []U {
	var domainArray []U
	for _, item := range jsonArray {
		domainArray = append(domainArray, item.ConvertToDomain())
	}
	return domainArray
}
