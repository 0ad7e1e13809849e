package moodle

import (
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/quizthumb-cli/quizthumb/browser"
	"github.com/quizthumb-cli/quizthumb/color"
	"github.com/quizthumb-cli/quizthumb/constant"
	"github.com/quizthumb-cli/quizthumb/log"
	"github.com/quizthumb-cli/quizthumb/style"
	"github.com/samber/lo"
)

// Question bank selectors on the quiz editing screen.
const (
	questionListSelector = `ul.slots`
	questionsLinkText    = "Questions"
)

// question is one entry of the quiz's question bank.
type question struct {
	Name    string `json:"name"`
	EditURL string `json:"edit"`
}

// openQuiz navigates to the quiz page, logging in first if the LMS redirects to
// its credential form, then opens the question bank.
func (r *Runner) openQuiz(tab *browser.Tab, quizURL string) error {
	if err := tab.Navigate(quizURL); err != nil {
		return fmt.Errorf("open quiz: %w", err)
	}

	location, err := tab.URL()
	if err != nil {
		return err
	}

	if isLMSLoginURL(location) {
		if err := r.login(tab); err != nil {
			return err
		}
		// The login redirect may not land on the quiz; go there explicitly.
		if err := tab.Navigate(quizURL); err != nil {
			return fmt.Errorf("reopen quiz after login: %w", err)
		}
	}

	clicked, err := tab.ClickMatching(constant.QuestionBankPath, questionsLinkText)
	if err != nil {
		return fmt.Errorf("questions link: %w", err)
	}
	if !clicked {
		return fmt.Errorf("no %q link on the quiz page, is the account allowed to edit it?", questionsLinkText)
	}

	if err := tab.WaitVisible(questionListSelector, browser.ElementTimeout); err != nil {
		return fmt.Errorf("question bank did not load: %w", err)
	}
	return nil
}

// questions collects the editable description questions of the open question
// bank. With a name filter exactly one question is returned, the first whose
// name matches exactly; when nothing matches, the error carries the
// closest-named candidate as a suggestion.
func (r *Runner) questions(tab *browser.Tab) ([]question, error) {
	// Unfiltered runs only touch description questions; an explicit name is
	// allowed to reach any question type.
	selector := `li.qtype_description`
	if r.nameFilter != "" {
		selector = `li[class*="qtype_"]`
	}

	js := fmt.Sprintf(`(() => {
		return [...document.querySelectorAll(%q)].map(li => {
			const name = li.querySelector('.questionname');
			const edit = li.querySelector('a[title*="Edit question"]');
			return {
				name: name ? name.textContent.trim() : "",
				edit: edit ? edit.href : "",
			};
		}).filter(q => q.edit !== "");
	})()`, selector)

	var all []question
	if err := tab.Eval(js, &all); err != nil {
		return nil, fmt.Errorf("collect questions: %w", err)
	}
	log.Debugf("question bank holds %d candidate questions", len(all))

	if r.nameFilter == "" {
		return all, nil
	}

	if q, ok := matchQuestion(all, r.nameFilter); ok {
		return []question{q}, nil
	}

	names := lo.Map(all, func(q question, _ int) string { return q.Name })
	if suggestion, ok := closestName(r.nameFilter, names); ok {
		return nil, fmt.Errorf(
			"no question named %q, did you mean %s?",
			r.nameFilter, style.Fg(color.Yellow)(suggestion),
		)
	}
	return nil, fmt.Errorf("no question named %q in this quiz", r.nameFilter)
}

// matchQuestion returns the first question whose name equals name exactly.
// Names are not unique in a question bank; only the first hit is processed.
func matchQuestion(all []question, name string) (question, bool) {
	return lo.Find(all, func(q question) bool { return q.Name == name })
}

// closestName picks the best fuzzy candidate for a mistyped question name.
func closestName(target string, candidates []string) (string, bool) {
	matches := fuzzy.RankFindNormalizedFold(target, candidates)
	if len(matches) > 0 {
		return lo.MinBy(matches, func(a, b fuzzy.Rank) bool {
			return a.Distance < b.Distance
		}).Target, true
	}

	best, distance := "", -1
	for _, candidate := range candidates {
		d := levenshtein.Distance(target, candidate)
		if distance < 0 || d < distance {
			best, distance = candidate, d
		}
	}
	return best, best != ""
}
