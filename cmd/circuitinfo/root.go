package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "circuitinfo",
	Short: "Circuit description file reader",
	Long:  "Circuitinfo reads key=value circuit description files and reports the parsed node, edge and clock parameters.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("CIRCUITINFO")
	viper.AutomaticEnv()
}
