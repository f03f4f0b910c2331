package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/frederic-klein/zkg/internal/meta"
	"github.com/frederic-klein/zkg/internal/pkg"
	"github.com/frederic-klein/zkg/internal/version"
)

var (
	verbose bool
	method  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "zkg",
		Short: "Inspect Zeek package metadata and version compatibility",
		Long:  "zkg reads package manifests (zkg.meta) and answers what the metadata says and whether a version satisfies a version spec.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	infoCmd := &cobra.Command{
		Use:   "info <package-path>",
		Short: "Show the parsed metadata of a local package",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	checkCmd := &cobra.Command{
		Use:   "check <version> <spec>",
		Short: "Check whether a version satisfies a version spec",
		Args:  cobra.ExactArgs(2),
		RunE:  runCheck,
	}
	checkCmd.Flags().StringVarP(&method, "method", "m", version.MethodVersion, "Tracking method (version, branch, commit, builtin)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type infoOutput struct {
	Name             string            `yaml:"name"`
	QualifiedName    string            `yaml:"qualified_name"`
	GitURL           string            `yaml:"git_url"`
	Aliases          []string          `yaml:"aliases,omitempty"`
	Tags             []string          `yaml:"tags,omitempty"`
	ShortDescription string            `yaml:"short_description,omitempty"`
	Depends          map[string]string `yaml:"depends,omitempty"`
	UserVars         []userVarOutput   `yaml:"user_vars,omitempty"`
}

type userVarOutput struct {
	Name    string `yaml:"name"`
	Default string `yaml:"default,omitempty"`
	Desc    string `yaml:"description,omitempty"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	metaPath, err := findManifest(args[0])
	if err != nil {
		return err
	}
	logrus.Debugf("Reading manifest: %s", metaPath)

	f, err := os.Open(metaPath)
	if err != nil {
		return fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	md, err := meta.ParseManifest(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", metaPath, err)
	}

	p := pkg.New(args[0], "", "", md)
	logrus.Debugf("Package: %s", p)

	out := infoOutput{
		Name:             p.Name,
		QualifiedName:    p.QualifiedName(),
		GitURL:           p.GitURL,
		Aliases:          p.Aliases(),
		Tags:             p.Tags(),
		ShortDescription: p.ShortDescription(),
	}

	deps, err := p.Dependencies("depends")
	if err != nil {
		logrus.Warnf("Ignoring depends field: %v", err)
	} else {
		out.Depends = deps
	}

	uvars, err := p.UserVars()
	if err != nil {
		logrus.Warnf("Ignoring user_vars field: %v", err)
	} else {
		for _, uv := range uvars {
			out.UserVars = append(out.UserVars, userVarOutput{
				Name:    uv.Name,
				Default: uv.Val,
				Desc:    uv.Desc,
			})
		}
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(out)
}

// findManifest resolves a package path to its metadata file, accepting
// either the file itself or a directory containing one.
func findManifest(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("locating package: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	for _, name := range []string{pkg.MetadataFilename, pkg.LegacyMetadataFilename} {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no %s found in %s", pkg.MetadataFilename, path)
}

func runCheck(cmd *cobra.Command, args []string) error {
	pv := &version.PackageVersion{Method: method, Version: args[0]}

	msg, ok := pv.Fulfills(args[1])
	if !ok {
		return fmt.Errorf("%s", msg)
	}

	fmt.Printf("%s satisfies %s\n", args[0], args[1])
	return nil
}
