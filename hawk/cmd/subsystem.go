package cmd

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed subsystemTemplate.txt
var subsystemTemplate string

var subsystemCmd = &cobra.Command{
	Use:   "subsystem",
	Short: "Create and manage subsystems.",
	Long:  "`subsystem --create [SubsystemName]` creates a new subsystem.",
	Run: func(cmd *cobra.Command, args []string) {
		subsystemName, _ := cmd.Flags().GetString("create")
		if subsystemName == "" {
			fmt.Println("Action not valid.")
			return
		}

		err := createSubsystemFolder(subsystemName)
		if err != nil {
			log.Fatalf("Error creating subsystem: %v", err)
		} else {
			fmt.Printf(
				"Subsystem '%s' created successfully!\n",
				subsystemName,
			)
		}

		errFile := generateSubsystemFile(subsystemName)
		if errFile != nil {
			log.Fatalf("Error generating subsystem file: %v\n", errFile)
		} else {
			fmt.Println("Subsystem file generated successfully!")
		}
	},
}

func init() {
	rootCmd.AddCommand(subsystemCmd)
	subsystemCmd.Flags().String("create", "", "Create a new subsystem")
}

// Create folder for the new subsystem
func createSubsystemFolder(name string) error {
	_, err := os.Stat(name)
	if err == nil {
		return fmt.Errorf("folder '%s' already exists", name)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%v", err)
	}

	return os.MkdirAll(name, 0755)
}

// Create subsystem file for the new subsystem
func generateSubsystemFile(folder string) error {
	_, errFind := os.Stat(folder)
	if os.IsNotExist(errFind) {
		return fmt.Errorf("failed to find folder %s", folder)
	} else if errFind != nil {
		return fmt.Errorf("%v", errFind)
	}

	filePath := filepath.Join(folder, "subsystem.go")
	placeholder := "{{packageName}}"
	packageName := folder
	content := strings.Replace(subsystemTemplate, placeholder, packageName, -1)

	err := os.WriteFile(filePath, []byte(content), 0644)
	if err != nil {
		return fmt.Errorf("%v", err)
	}

	return nil
}
