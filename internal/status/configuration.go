package status

import "strings"

// RepositoryConfiguration captures one configured repository entry.
type RepositoryConfiguration struct {
	Path string `mapstructure:"path"`
	Name string `mapstructure:"name"`
}

// GroupConfiguration captures a named, ordered section of repository entries.
type GroupConfiguration struct {
	Name         string                    `mapstructure:"name"`
	Repositories []RepositoryConfiguration `mapstructure:"repositories"`
}

// CommandConfiguration captures persistent settings for the status command.
type CommandConfiguration struct {
	Repositories []RepositoryConfiguration `mapstructure:"repositories"`
	Groups       []GroupConfiguration      `mapstructure:"groups"`
	Roots        []string                  `mapstructure:"roots"`
	Tool         string                    `mapstructure:"tool"`
	Format       string                    `mapstructure:"format"`
}

// DefaultCommandConfiguration returns baseline configuration values for the status command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Repositories: nil,
		Groups:       nil,
		Roots:        nil,
		Tool:         toolGitStringConstant,
		Format:       formatTableStringConstant,
	}
}

// DefaultConfigurationValues exposes configuration defaults keyed under the provided prefix.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey + ".tool":   defaults.Tool,
		configurationKey + ".format": defaults.Format,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Repositories = sanitizeRepositories(configuration.Repositories)
	sanitized.Groups = sanitizeGroups(configuration.Groups)
	sanitized.Roots = sanitizeRoots(configuration.Roots)
	sanitized.Tool = strings.TrimSpace(configuration.Tool)
	if len(sanitized.Tool) == 0 {
		sanitized.Tool = toolGitStringConstant
	}
	sanitized.Format = strings.TrimSpace(configuration.Format)
	if len(sanitized.Format) == 0 {
		sanitized.Format = formatTableStringConstant
	}

	return sanitized
}

func sanitizeRepositories(raw []RepositoryConfiguration) []RepositoryConfiguration {
	sanitized := make([]RepositoryConfiguration, 0, len(raw))
	for index := range raw {
		trimmedPath := strings.TrimSpace(raw[index].Path)
		if len(trimmedPath) == 0 {
			continue
		}
		sanitized = append(sanitized, RepositoryConfiguration{
			Path: trimmedPath,
			Name: strings.TrimSpace(raw[index].Name),
		})
	}
	if len(sanitized) == 0 {
		return nil
	}
	return sanitized
}

func sanitizeGroups(raw []GroupConfiguration) []GroupConfiguration {
	sanitized := make([]GroupConfiguration, 0, len(raw))
	for index := range raw {
		trimmedName := strings.TrimSpace(raw[index].Name)
		repositories := sanitizeRepositories(raw[index].Repositories)
		if len(trimmedName) == 0 && len(repositories) == 0 {
			continue
		}
		sanitized = append(sanitized, GroupConfiguration{
			Name:         trimmedName,
			Repositories: repositories,
		})
	}
	if len(sanitized) == 0 {
		return nil
	}
	return sanitized
}

func sanitizeRoots(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for index := range raw {
		trimmed := strings.TrimSpace(raw[index])
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	if len(sanitized) == 0 {
		return nil
	}
	return sanitized
}
