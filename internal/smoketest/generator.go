package smoketest

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/okian/rotoblogs/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	wordCountCases     = 5
)

// Constants for word count generation ranges.
const (
	shortPostMin    = 150
	shortPostRange  = 250
	mediumPostMin   = 400
	mediumPostRange = 400
	longPostMin     = 800
	longPostRange   = 700
	deepDiveMin     = 1500
	deepDiveRange   = 1000
	blurbMin        = 50
	blurbRange      = 100
)

// Constants for word count cases.
const (
	caseShortPost = 0
	caseMedium    = 1
	caseLong      = 2
	caseDeepDive  = 3
	caseBlurb     = 4
)

// Name pools for generated players.
var (
	firstNames = []string{
		"Jalen", "Marcus", "DeAndre", "Tyreek", "Justin", "Trevor", "Amari",
		"Derrick", "Saquon", "Lamar", "Davante", "Stefon", "Cooper", "Austin",
		"Micah", "Garrett", "Brock", "Bijan", "Puka", "Nico",
	}
	lastNames = []string{
		"Johnson", "Williams", "Smith", "Brown", "Jackson", "Harris", "Moore",
		"Robinson", "Walker", "Hall", "Allen", "Young", "King", "Wright",
		"Mitchell", "Carter", "Turner", "Parker", "Collins", "Edwards",
	}
	positions = []string{"QB", "RB", "RB", "WR", "WR", "WR", "TE", "K", "DST"}
	teams     = []string{
		"BUF", "MIA", "KC", "BAL", "CIN", "PHI", "DAL", "SF", "DET", "GB",
		"MIN", "LAR", "SEA", "HOU", "JAX", "NYJ",
	}
)

// getRandomInt returns a random int in [0, n) using crypto/rand.
func getRandomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// generateCatalog creates the specified number of records with unique player names.
func generateCatalog(ctx context.Context, config *Config, stats *Stats) ([]Blog, error) {
	logger.Get().Info(ctx, "generating catalog with unique player names", logger.Int("numBlogs", config.NumBlogs))

	blogs := make([]Blog, config.NumBlogs)
	seen := make(map[string]bool, config.NumBlogs)

	for i := 0; i < config.NumBlogs; i++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during catalog generation: %w", ctx.Err())
		default:
		}

		name := generatePlayerName(i, seen)
		seen[name] = true
		blogs[i] = Blog{
			BlogID:     uuid.New().String(),
			PlayerName: name,
			Position:   positions[getRandomInt(len(positions))],
			Team:       teams[getRandomInt(len(teams))],
			WordCount:  generateVariedWordCount(),
		}
	}

	stats.BlogsGenerated = len(blogs)
	logger.Get().Info(ctx, "generated catalog successfully", logger.Int("count", len(blogs)))

	return blogs, nil
}

// generatePlayerName picks a first/last name pair, suffixing the index when the
// pools run out of unique combinations.
func generatePlayerName(index int, seen map[string]bool) string {
	for attempt := 0; attempt < 10; attempt++ {
		name := firstNames[getRandomInt(len(firstNames))] + " " + lastNames[getRandomInt(len(lastNames))]
		if !seen[name] {
			return name
		}
	}
	return fmt.Sprintf("%s %s %d",
		firstNames[getRandomInt(len(firstNames))],
		lastNames[getRandomInt(len(lastNames))],
		index,
	)
}

// generateVariedWordCount creates a word count with varied distribution.
func generateVariedWordCount() int {
	switch getRandomInt(wordCountCases) {
	case caseShortPost:
		// Short posts (150 - 400) - most common
		return shortPostMin + int(getRandomFloat()*shortPostRange)
	case caseMedium:
		// Medium posts (400 - 800)
		return mediumPostMin + int(getRandomFloat()*mediumPostRange)
	case caseLong:
		// Long posts (800 - 1500)
		return longPostMin + int(getRandomFloat()*longPostRange)
	case caseDeepDive:
		// Deep dives (1500 - 2500) - rare
		return deepDiveMin + int(getRandomFloat()*deepDiveRange)
	case caseBlurb:
		// Blurbs (50 - 150) - rare
		return blurbMin + int(getRandomFloat()*blurbRange)
	default:
		return shortPostMin + int(getRandomFloat()*shortPostRange)
	}
}
