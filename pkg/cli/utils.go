package cli

import "github.com/urfave/cli/v3"

// joinFlags concatenates flag slices from multiple config structs
func joinFlags(flagSets ...[]cli.Flag) []cli.Flag {
	var joined []cli.Flag
	for _, flags := range flagSets {
		joined = append(joined, flags...)
	}
	return joined
}
