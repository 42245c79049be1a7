package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"alertacordon/internal/domain/location"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type resolveOptions struct {
	knownLocationsFile string
	asJSON             bool
}

type resolveOutput struct {
	Query     string          `json:"query"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Source    location.Source `json:"source"`
}

func newResolveCommand() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [location...]",
		Short: "Show where a typed location is pinned",
		Long: `Resolve a free-text location with the offline resolver used by the report form.

Coordinates typed as "lat, lng" are used as is, known corners and landmarks are
matched next, and anything else falls back to the centre of the neighbourhood.`,
		Example: `  alertctl resolve "18 de Julio y Ejido"
  alertctl resolve --json -- "-34.9, -56.16"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.knownLocationsFile, "known-locations", "", "YAML file with extra known locations")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")

	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions, query string) error {
	var extra []location.KnownLocation
	if opts.knownLocationsFile != "" {
		loaded, err := location.LoadKnownLocations(opts.knownLocationsFile)
		if err != nil {
			return errors.Wrap(err, "load known locations")
		}
		extra = loaded
	}

	coords, source := location.NewResolver(extra...).Lookup(query)
	out := cmd.OutOrStdout()

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return errors.WithStack(enc.Encode(resolveOutput{
			Query:     query,
			Latitude:  coords.Latitude,
			Longitude: coords.Longitude,
			Source:    source,
		}))
	}

	_, err := fmt.Fprintf(out, "%s,%s\t%s\n",
		strconv.FormatFloat(coords.Latitude, 'f', -1, 64),
		strconv.FormatFloat(coords.Longitude, 'f', -1, 64),
		source,
	)

	return errors.WithStack(err)
}
