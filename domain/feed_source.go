package domain

// FeedSource is one RSS/Atom endpoint contributing items to a topic.
type FeedSource struct {
	ID      string `json:"id" mapstructure:"id"`
	Name    string `json:"name" mapstructure:"name"`
	URL     string `json:"url" mapstructure:"url"`
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
}

// Topic groups sources with the keywords used to filter their items.
type Topic struct {
	Key      string       `json:"key" mapstructure:"key"`
	Label    string       `json:"label" mapstructure:"label"`
	Keywords []string     `json:"keywords" mapstructure:"keywords"`
	Sources  []FeedSource `json:"sources" mapstructure:"sources"`
}

// EnabledSources returns the enabled sources in registry order.
func EnabledSources(sources []FeedSource) []FeedSource {
	enabled := make([]FeedSource, 0, len(sources))
	for _, s := range sources {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	return enabled
}

// NewsCategory is one of the headline categories served by the news endpoint.
type NewsCategory struct {
	Name    string       `json:"name" mapstructure:"name"`
	Sources []FeedSource `json:"sources" mapstructure:"sources"`
}

// TopCategory selects every category, interleaved.
const TopCategory = "Top"

// TopicSummary is the listing view of a Topic.
type TopicSummary struct {
	Key            string   `json:"key"`
	Label          string   `json:"label"`
	Keywords       []string `json:"keywords"`
	SourceCount    int      `json:"sourceCount"`
	EnabledSources int      `json:"enabledSources"`
}
