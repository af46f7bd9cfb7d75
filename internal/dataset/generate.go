package dataset

import (
	"math/rand/v2"
	"strings"
)

// templates mimic the shape of real tweets: mentions, hashtags, emoji,
// shortened URLs and punctuation. Each {} is filled with a random word.
var templates = []string{
	"Just watched {} and it was {} ! 😍 #{} #movies",
	"Can't believe {} is happening {} ! This is {} 🤯",
	"@{} Thanks for {} ! Really {} experience 🙏 #{}",
	"Working on {} today. {} is harder than expected 😅 #coding",
	"New {} just dropped! {} looks {} 🔥 Check it out: http://bit.ly/{}",
	"Why is {} so {} ? Someone explain {} to me please 🤔",
	"{} weather today! Perfect for {} ☀️ #{} #{}",
	"Finally finished {} ! Took {} hours but worth it 💪 #{}",
	"RT @{}: {} is the future of {} ! {} #innovation",
	"Unpopular opinion: {} is overrated. {} is much better IMO 🤷",
}

var words = []string{
	"amazing", "terrible", "awesome", "crazy", "unbelievable", "fantastic",
	"Python", "coding", "AI", "machine learning", "data science", "web dev",
	"coffee", "pizza", "music", "sports", "gaming", "travel", "food",
	"happy", "sad", "excited", "tired", "motivated", "inspired",
}

// DefaultSeed makes generated and sampled datasets reproducible.
const DefaultSeed uint64 = 42

// Generate returns n synthetic tweets. The same seed always yields the same
// tweets. A non-positive n yields nil.
func Generate(n int, seed uint64) []string {
	if n <= 0 {
		return nil
	}
	r := rand.New(rand.NewPCG(seed, seed))

	tweets := make([]string, 0, n)
	for range n {
		tmpl := templates[r.IntN(len(templates))]
		tweets = append(tweets, fill(tmpl, r))
	}
	return tweets
}

func fill(tmpl string, r *rand.Rand) string {
	var sb strings.Builder
	for {
		i := strings.Index(tmpl, "{}")
		if i < 0 {
			sb.WriteString(tmpl)
			return sb.String()
		}
		sb.WriteString(tmpl[:i])
		sb.WriteString(words[r.IntN(len(words))])
		tmpl = tmpl[i+2:]
	}
}
