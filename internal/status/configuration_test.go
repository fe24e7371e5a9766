package status_test

import (
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"

	"github.com/repotab/repotab/internal/status"
)

// Decoding mirrors how the configuration loader hydrates command settings.
func TestCommandConfigurationDecodesFromSettingsMap(testInstance *testing.T) {
	settings := map[string]any{
		"tool":   "gfold",
		"format": "csv",
		"repositories": []map[string]any{
			{"path": "~/src/alpha", "name": "alpha"},
		},
		"groups": []map[string]any{
			{
				"name": "work",
				"repositories": []map[string]any{
					{"path": "~/work/billing-service"},
				},
			},
		},
		"roots": []string{"~/src/experiments"},
	}

	var configuration status.CommandConfiguration
	require.NoError(testInstance, mapstructure.Decode(settings, &configuration))

	require.Equal(testInstance, "gfold", configuration.Tool)
	require.Equal(testInstance, "csv", configuration.Format)
	require.Equal(testInstance, []status.RepositoryConfiguration{{Path: "~/src/alpha", Name: "alpha"}}, configuration.Repositories)
	require.Equal(testInstance, []status.GroupConfiguration{
		{
			Name:         "work",
			Repositories: []status.RepositoryConfiguration{{Path: "~/work/billing-service"}},
		},
	}, configuration.Groups)
	require.Equal(testInstance, []string{"~/src/experiments"}, configuration.Roots)
}

func TestDefaultConfigurationValues(testInstance *testing.T) {
	defaults := status.DefaultConfigurationValues("status")

	require.Equal(testInstance, "git", defaults["status.tool"])
	require.Equal(testInstance, "table", defaults["status.format"])
}
