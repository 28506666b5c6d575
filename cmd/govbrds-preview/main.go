package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	govbrds "github.com/goliatone/go-govbrds"
	"github.com/goliatone/go-govbrds/pkg/messages"
)

var components = []string{
	"form",
	"formset",
	"field",
	"label",
	"button",
	"alert",
	"messages",
	"pagination",
}

func main() {
	component := flag.String("component", "form", "component to preview")
	layout := flag.String("layout", "", "field layout: horizontal, inline or floating")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "pick the component and content via prompts")
	flag.Parse()

	ctx := context.Background()

	engine, err := govbrds.New()
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	content := "Preview content"
	if *interactive {
		if err := prompt(component, layout, &content); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	html, err := renderSample(ctx, engine, *component, *layout, content)
	if err != nil {
		log.Fatalf("Failed to render %s: %v", *component, err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Preview written to %s\n", *output)
	} else {
		fmt.Println(html)
	}
}

func prompt(component, layout, content *string) error {
	if err := survey.AskOne(&survey.Select{
		Message: "Component to preview:",
		Options: components,
		Default: *component,
	}, component); err != nil {
		return err
	}

	if *component == "form" || *component == "formset" || *component == "field" {
		if err := survey.AskOne(&survey.Select{
			Message: "Field layout:",
			Options: []string{"default", "horizontal", "inline", "floating"},
		}, layout); err != nil {
			return err
		}
		if *layout == "default" {
			*layout = ""
		}
	}

	if *component == "label" || *component == "button" || *component == "alert" {
		if err := survey.AskOne(&survey.Input{
			Message: "Content:",
			Default: *content,
		}, content); err != nil {
			return err
		}
	}
	return nil
}

func renderSample(ctx context.Context, engine *govbrds.Engine, component, layout, content string) (string, error) {
	switch component {
	case "form":
		return engine.RenderForm(ctx, sampleForm(), layout, nil)
	case "formset":
		formset := govbrds.Formset{Forms: []govbrds.Form{sampleForm(), sampleForm()}}
		return engine.RenderFormset(ctx, formset, layout, nil)
	case "field":
		return engine.RenderField(ctx, sampleForm().Fields[0], layout, nil)
	case "label":
		return engine.RenderLabel(ctx, content, govbrds.Options{"label_for": "id_email"})
	case "button":
		return engine.RenderButton(ctx, content, govbrds.Options{"button_type": "submit"})
	case "alert":
		return engine.RenderAlert(ctx, content, govbrds.Options{"alert_type": "info"})
	case "messages":
		return engine.RenderMessages(ctx, []govbrds.Message{
			{Level: messages.LevelSuccess, Text: "Saved."},
			{Level: messages.LevelWarning, Text: "Two fields were skipped."},
		}, nil)
	case "pagination":
		return engine.RenderPagination(ctx, 5, 20, govbrds.Options{"url": "/items?sort=name"})
	}
	return "", fmt.Errorf("unknown component %q", component)
}

func sampleForm() govbrds.Form {
	return govbrds.Form{
		Fields: []govbrds.Field{
			{
				Name:     "email",
				Label:    "Email address",
				HelpText: "We never share it.",
				Required: true,
				Widget:   govbrds.Widget{Type: "email"},
			},
			{
				Name:  "body",
				Label: "Message",
				Widget: govbrds.Widget{
					Type:  "textarea",
					Attrs: map[string]string{"rows": "4"},
				},
			},
			{
				Name:   "subscribe",
				Label:  "Subscribe to updates",
				Widget: govbrds.Widget{Type: "checkbox"},
			},
		},
	}
}
