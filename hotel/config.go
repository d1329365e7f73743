package hotel

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config keys and defaults.
const (
	cfgKeyDataFile       = "data_file"
	cfgKeyCurrencySuffix = "currency_suffix"

	DefaultDataFile       = "hotel.xlsx"
	DefaultCurrencySuffix = "RUB"
)

// Config holds the settings the shell needs: where the workbook lives and
// which currency suffix the price column carries.
type Config struct {
	DataFile       string
	CurrencySuffix string
}

// LoadConfig reads settings with Viper. When path is empty it looks for
// hotel.yaml in the working directory; a missing file is not an error and
// the defaults apply. An explicit path that cannot be read is an error.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDataFile, DefaultDataFile)
	v.SetDefault(cfgKeyCurrencySuffix, DefaultCurrencySuffix)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("hotel")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return Config{
		DataFile:       v.GetString(cfgKeyDataFile),
		CurrencySuffix: v.GetString(cfgKeyCurrencySuffix),
	}, nil
}
