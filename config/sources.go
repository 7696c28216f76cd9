package config

import (
	"fmt"
	"net/url"
	"strings"

	"newsdeck/domain"

	"github.com/spf13/viper"
)

// SourceRegistry holds the topic and news category definitions.
// It is built once at startup and never mutated afterwards.
type SourceRegistry struct {
	Topics     []domain.Topic        `json:"topics" mapstructure:"topics"`
	Categories []domain.NewsCategory `json:"categories" mapstructure:"categories"`
}

// LoadSourceRegistry returns the built-in registry when path is empty.
// Otherwise the file replaces each section it defines.
func LoadSourceRegistry(path string) (*SourceRegistry, error) {
	registry := &SourceRegistry{
		Topics:     DefaultTopics(),
		Categories: DefaultCategories(),
	}

	if path == "" {
		return registry, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read sources file %s: %w", path, err)
	}

	var override SourceRegistry
	if err := v.Unmarshal(&override); err != nil {
		return nil, fmt.Errorf("parse sources file %s: %w", path, err)
	}

	if v.IsSet("topics") {
		registry.Topics = override.Topics
	}
	if v.IsSet("categories") {
		registry.Categories = override.Categories
	}

	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("sources file %s: %w", path, err)
	}

	return registry, nil
}

// Validate checks topic keys and source definitions.
func (r *SourceRegistry) Validate() error {
	keys := make(map[string]struct{}, len(r.Topics))
	for _, topic := range r.Topics {
		if strings.TrimSpace(topic.Key) == "" {
			return fmt.Errorf("topic with empty key")
		}
		if _, dup := keys[topic.Key]; dup {
			return fmt.Errorf("duplicate topic key %q", topic.Key)
		}
		keys[topic.Key] = struct{}{}

		if err := validateSources(topic.Key, topic.Sources); err != nil {
			return err
		}
	}

	names := make(map[string]struct{}, len(r.Categories))
	for _, category := range r.Categories {
		if strings.TrimSpace(category.Name) == "" {
			return fmt.Errorf("category with empty name")
		}
		if strings.EqualFold(category.Name, domain.TopCategory) {
			return fmt.Errorf("category name %q is reserved", category.Name)
		}
		if _, dup := names[category.Name]; dup {
			return fmt.Errorf("duplicate category %q", category.Name)
		}
		names[category.Name] = struct{}{}

		if err := validateSources(category.Name, category.Sources); err != nil {
			return err
		}
	}

	return nil
}

func validateSources(owner string, sources []domain.FeedSource) error {
	ids := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		if s.ID == "" {
			return fmt.Errorf("%s: source %q has empty id", owner, s.Name)
		}
		if _, dup := ids[s.ID]; dup {
			return fmt.Errorf("%s: duplicate source id %q", owner, s.ID)
		}
		ids[s.ID] = struct{}{}

		u, err := url.Parse(s.URL)
		if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%s: source %q has invalid url %q", owner, s.ID, s.URL)
		}
	}
	return nil
}

func src(id, name, rawURL string) domain.FeedSource {
	return domain.FeedSource{ID: id, Name: name, URL: rawURL, Enabled: true}
}

const (
	reutersMiddleEast = "https://feeds.reuters.com/reuters/MENews"
	reutersAsia       = "https://feeds.reuters.com/reuters/INbusinessNews"
	bbcEurope         = "http://feeds.bbci.co.uk/news/world/europe/rss.xml"
	aljazeeraAll      = "https://www.aljazeera.com/xml/rss/all.xml"
	timesOfIsrael     = "https://www.timesofisrael.com/feed/"
)

// DefaultTopics returns a fresh copy of the built-in dashboard topics.
func DefaultTopics() []domain.Topic {
	return []domain.Topic{
		{
			Key:      "finance",
			Label:    "Finance",
			Keywords: []string{"finance", "market", "stock", "economy", "trading", "investment"},
			Sources: []domain.FeedSource{
				src("fin-1", "Reuters Business", "https://feeds.reuters.com/reuters/businessNews"),
				src("fin-2", "Financial Times", "https://www.ft.com/?format=rss"),
				src("fin-3", "Bloomberg", "https://feeds.bloomberg.com/markets/news.rss"),
				src("fin-4", "MarketWatch", "https://www.marketwatch.com/rss/topstories"),
			},
		},
		{
			Key:      "tech",
			Label:    "Technology",
			Keywords: []string{"tech", "technology", "ai", "software", "startup", "innovation"},
			Sources: []domain.FeedSource{
				src("tech-1", "TechCrunch", "https://techcrunch.com/feed/"),
				src("tech-2", "The Verge", "https://www.theverge.com/rss/index.xml"),
				src("tech-3", "Hacker News", "https://news.ycombinator.com/rss"),
				src("tech-4", "Ars Technica", "https://feeds.arstechnica.com/arstechnica/index"),
				src("tech-5", "Wired", "https://www.wired.com/feed/rss"),
			},
		},
		{
			Key:      "crypto",
			Label:    "Cryptocurrency",
			Keywords: []string{"crypto", "bitcoin", "ethereum", "blockchain", "btc", "eth"},
			Sources: []domain.FeedSource{
				src("crypto-1", "CoinDesk", "https://www.coindesk.com/arc/outboundfeeds/rss/"),
				src("crypto-2", "CoinTelegraph", "https://cointelegraph.com/rss"),
				src("crypto-3", "Decrypt", "https://decrypt.co/feed"),
				src("crypto-4", "The Block", "https://www.theblock.co/rss.xml"),
			},
		},
		{
			Key:      "iran",
			Label:    "Iran",
			Keywords: []string{"iran", "iranian", "tehran", "middle east", "israel"},
			Sources: []domain.FeedSource{
				src("iran-1", "Reuters Middle East", reutersMiddleEast),
				src("iran-2", "Al Jazeera Middle East", aljazeeraAll),
				src("iran-3", "Times of Israel", timesOfIsrael),
				src("iran-4", "BBC Middle East", "http://feeds.bbci.co.uk/news/world/middle_east/rss.xml"),
			},
		},
		{
			Key:      "ukraine",
			Label:    "Ukraine",
			Keywords: []string{"ukraine", "ukrainian", "kyiv", "russia", "war"},
			Sources: []domain.FeedSource{
				src("ukraine-1", "Kyiv Independent", "https://kyivindependent.com/feed/"),
				src("ukraine-2", "Reuters Europe", "https://feeds.reuters.com/reuters/UKdomesticNews"),
				src("ukraine-3", "BBC Europe", bbcEurope),
				src("ukraine-4", "Defense One", "https://www.defenseone.com/rss/"),
			},
		},
		{
			Key:      "china",
			Label:    "China",
			Keywords: []string{"china", "chinese", "beijing", "xi", "ccp"},
			Sources: []domain.FeedSource{
				src("china-1", "South China Morning Post", "https://www.scmp.com/rss/91/feed"),
				src("china-2", "Reuters Asia", reutersAsia),
				src("china-3", "FT Asia", "https://www.ft.com/asia-pacific?format=rss"),
			},
		},
		{
			Key:      "taiwan",
			Label:    "Taiwan",
			Keywords: []string{"taiwan", "taiwanese", "taipei", "strait"},
			Sources: []domain.FeedSource{
				src("taiwan-1", "Focus Taiwan", "https://focustaiwan.tw/rss/news.xml"),
				src("taiwan-2", "Taiwan News", "https://www.taiwannews.com.tw/rss.xml"),
				src("taiwan-3", "Reuters Asia", reutersAsia),
			},
		},
		{
			Key:      "russia",
			Label:    "Russia",
			Keywords: []string{"russia", "russian", "moscow", "putin", "kremlin"},
			Sources: []domain.FeedSource{
				src("russia-1", "Reuters World", "https://feeds.reuters.com/reuters/worldNews"),
				src("russia-2", "BBC Europe", bbcEurope),
			},
		},
		{
			Key:      "israel-palestine",
			Label:    "Israel/Palestine",
			Keywords: []string{"israel", "palestine", "palestinian", "gaza", "hamas", "west bank"},
			Sources: []domain.FeedSource{
				src("isr-1", "Haaretz", "https://www.haaretz.com/cmlink/1.628816"),
				src("isr-2", "Times of Israel", timesOfIsrael),
				src("isr-3", "Al Jazeera Middle East", aljazeeraAll),
				src("isr-4", "Reuters Middle East", reutersMiddleEast),
			},
		},
		{
			Key:      "north-korea",
			Label:    "North Korea",
			Keywords: []string{"north korea", "dprk", "pyongyang", "kim jong"},
			Sources: []domain.FeedSource{
				src("nk-1", "NK News", "https://www.nknews.org/feed/"),
				src("nk-2", "Reuters Asia", reutersAsia),
				src("nk-3", "BBC Asia", "http://feeds.bbci.co.uk/news/world/asia/rss.xml"),
			},
		},
	}
}

// DefaultCategories returns the built-in headline categories in display order.
func DefaultCategories() []domain.NewsCategory {
	return []domain.NewsCategory{
		{Name: "Finance", Sources: []domain.FeedSource{
			src("cnbc", "CNBC", "https://www.cnbc.com/id/15839069/device/rss/rss.html"),
			src("yahoo-finance", "Yahoo Finance", "https://finance.yahoo.com/news/rssindex"),
		}},
		{Name: "Crypto", Sources: []domain.FeedSource{
			src("coindesk", "CoinDesk", "https://www.coindesk.com/arc/outboundfeeds/rss/"),
			src("cointelegraph", "Cointelegraph", "https://cointelegraph.com/rss"),
		}},
		{Name: "Geopolitics", Sources: []domain.FeedSource{
			src("aljazeera", "Al Jazeera", aljazeeraAll),
			src("bbc-world", "BBC World", "https://feeds.bbci.co.uk/news/world/rss.xml"),
		}},
		{Name: "Tech", Sources: []domain.FeedSource{
			src("techcrunch", "TechCrunch", "https://techcrunch.com/feed/"),
			src("the-verge", "The Verge", "https://www.theverge.com/rss/index.xml"),
		}},
	}
}
