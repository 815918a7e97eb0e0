package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/strataconf/strata/pkg/env"
	"github.com/strataconf/strata/pkg/file"
	"github.com/strataconf/strata/pkg/resolver"
)

// stringList accumulates repeatable flag values
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	// Parse command line flags
	prefix := flag.String("prefix", "APP", "Environment variable prefix to collect")
	keySep := flag.String("key-separator", "__", "Substring rewritten to '.' in key paths")
	prefixSep := flag.String("prefix-separator", "_", "Separator stripped together with the prefix")
	listSep := flag.String("list-separator", ",", "Separator for list values (empty disables lists)")
	noParse := flag.Bool("no-parse", false, "Keep every value as a string")
	configFile := flag.String("config", "", "Optional YAML file merged below the environment layer")
	format := flag.String("format", "yaml", "Output format: yaml or json")
	origins := flag.Bool("origins", false, "Print keys with kind and provenance instead of a document")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	var listKeys stringList
	flag.Var(&listKeys, "list-key", "Processed key to parse as a list (repeatable)")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	envSrc, err := env.New(*prefix, nil)
	if err != nil {
		logrus.Fatalf("Failed to snapshot environment: %v", err)
	}
	envSrc.WithKeySeparator(*keySep).
		WithPrefixSeparator(*prefixSep).
		WithTryParsing(!*noParse).
		WithListSeparator(*listSep)
	for _, k := range listKeys {
		envSrc.WithListParseKey(k)
	}

	r := resolver.New()
	if *configFile != "" {
		logrus.Debugf("Merging config file %s below the environment layer", *configFile)
		r.Append(file.New(*configFile))
	}
	r.Append(envSrc)

	settings, err := r.Resolve()
	if err != nil {
		logrus.Fatalf("Failed to resolve configuration: %v", err)
	}
	logrus.Debugf("Resolved %d keys with prefix %s", settings.Len(), *prefix)

	if *origins {
		for _, k := range settings.Keys() {
			v, _ := settings.Value(k)
			fmt.Printf("%s = %s (%s, from %s)\n", k, v, v.Kind(), v.Origin())
		}
		return
	}

	doc := settings.Interface()
	var out []byte
	switch *format {
	case "json":
		out, err = json.MarshalIndent(doc, "", "  ")
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(doc)
	default:
		logrus.Fatalf("Unknown output format %q (expected yaml or json)", *format)
	}
	if err != nil {
		logrus.Fatalf("Failed to encode settings: %v", err)
	}
	os.Stdout.Write(out)
}
