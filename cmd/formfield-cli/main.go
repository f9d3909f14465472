package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"go.uber.org/zap"

	formfield "github.com/goliatone/go-formfield"
	"github.com/goliatone/go-formfield/pkg/naming"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config with custom_fields")
	typeName := flag.String("type", "", "field type to resolve (prompts when empty)")
	fieldName := flag.String("name", "", "field name to inspect (prompts when empty)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	var cfg formfield.ConfigSource
	if *configPath != "" {
		loaded, err := formfield.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	options := []formfield.Option{}
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to build logger: %v", err)
		}
		defer logger.Sync()
		options = append(options, formfield.WithLogger(logger))
	}

	helper, err := formfield.New(nil, nil, cfg, options...)
	if err != nil {
		log.Fatalf("Failed to construct helper: %v", err)
	}

	selected := *typeName
	if selected == "" {
		selected, err = promptType(helper)
		if err != nil {
			exitOnPromptErr(err)
		}
	}

	class, err := helper.FieldType(selected)
	if err != nil {
		log.Fatalf("Failed to resolve type: %v", err)
	}
	fmt.Printf("type %q resolves to %s\n", selected, class)

	name := *fieldName
	if name == "" {
		name, err = promptName()
		if err != nil {
			exitOnPromptErr(err)
		}
	}
	if err := helper.ValidateFieldName(name, "formfield-cli"); err != nil {
		log.Fatalf("Invalid field name: %v", err)
	}

	fmt.Printf("label: %q\n", helper.FormatLabel(name))
	fmt.Printf("dot path: %q\n", helper.DotPath(name))
}

func promptType(helper *formfield.Helper) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message:  "Field type:",
		Options:  helper.Types().Known(),
		PageSize: 12,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

func promptName() (string, error) {
	var name string
	prompt := &survey.Input{
		Message: "Field name:",
		Help:    "bracketed array names (items[0][name]) are allowed",
	}
	validator := func(ans interface{}) error {
		value, _ := ans.(string)
		return naming.Validate(value, "formfield-cli")
	}
	if err := survey.AskOne(prompt, &name, survey.WithValidator(validator)); err != nil {
		return "", err
	}
	return name, nil
}

func exitOnPromptErr(err error) {
	if errors.Is(err, terminal.InterruptErr) {
		os.Exit(130)
	}
	log.Fatalf("Prompt failed: %v", err)
}
