package cmd

import (
	"time"

	"github.com/LixenWraith/dirlog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// statusReport is the YAML document printed by the status command.
type statusReport struct {
	Directory   string             `yaml:"directory"`
	Path        string             `yaml:"path,omitempty"`
	Priority    string             `yaml:"priority"`
	Status      string             `yaml:"status"`
	Diagnostics []diagnosticReport `yaml:"diagnostics,omitempty"`
	Files       []fileReport       `yaml:"files,omitempty"`
}

type diagnosticReport struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
	Error   string `yaml:"error,omitempty"`
}

type fileReport struct {
	Name     string `yaml:"name"`
	Size     int64  `yaml:"size"`
	Modified string `yaml:"modified"`
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the logger state for the configured directory",
		Long: `Open the logger for the configured directory and print its state,
diagnostics and the daily log files already present, as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.logger()
			if err != nil {
				return err
			}

			report := buildStatusReport(l)
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(report); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func buildStatusReport(l *dirlog.Logger) statusReport {
	report := statusReport{
		Directory: l.Directory(),
		Path:      l.Path(),
		Priority:  l.Priority().String(),
		Status:    l.Status().String(),
	}

	for _, d := range l.Diagnostics() {
		dr := diagnosticReport{Kind: d.Kind.String(), Message: d.Message}
		if d.Err != nil {
			dr.Error = d.Err.Error()
		}
		report.Diagnostics = append(report.Diagnostics, dr)
	}

	// An OFF logger may point at a directory that was never created.
	if files, err := l.History(); err == nil {
		for _, f := range files {
			report.Files = append(report.Files, fileReport{
				Name:     f.Name,
				Size:     f.Size,
				Modified: f.ModTime.Format(time.RFC3339),
			})
		}
	}
	return report
}
