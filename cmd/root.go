/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ondrolexa/sg2/InputParameters"
	"github.com/ondrolexa/sg2/utils"
)

var (
	cfgFile string
	log     = logrus.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sg2",
	Short: "Strain and flow analysis of 2x2 tensors",
	Long: `
Decomposes deformation, displacement and velocity gradients and samples the
fields and curves used to draw them. Every command reads a YAML input deck
and writes YAML for a renderer.

sg2 ellipse -I deck.yaml -o ellipse.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		log.SetOutput(os.Stderr)
		if viper.GetBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sg2.yaml)")
	pf.StringP("inputFile", "I", "", "YAML input deck with the tensor and sampling parameters")
	pf.StringP("outputFile", "o", "", "YAML output file, default is stdout")
	pf.BoolP("verbose", "v", false, "log each step and echo the input deck")
	pf.String("profile", "", "write a CPU profile into this directory")
	for _, name := range []string{"inputFile", "outputFile", "verbose", "profile"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".sg2")
	}
	viper.SetEnvPrefix("sg2")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

type runFunc func(ip *InputParameters.InputParameters2D) (out interface{}, err error)

// runCommand reads the deck, runs the command and writes its output.
func runCommand(cmd *cobra.Command, run runFunc) (err error) {
	var (
		ip  *InputParameters.InputParameters2D
		out interface{}
	)
	if dir := viper.GetString("profile"); dir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
	}
	entry := log.WithField("command", cmd.Name())
	if ip, err = readInput(viper.GetString("inputFile")); err != nil {
		return
	}
	if viper.GetBool("verbose") {
		ip.Print(cmd.ErrOrStderr())
	}
	entry.Debugf("running %q", ip.Title)
	if out, err = run(ip); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	entry.Debug(utils.GetMemUsage())
	outFile := viper.GetString("outputFile")
	if err = writeOutput(cmd.OutOrStdout(), outFile, out); err != nil {
		return
	}
	if outFile != "" {
		entry.Infof("wrote %s", outFile)
	}
	return
}
