package moodle

import (
	"fmt"

	"github.com/quizthumb-cli/quizthumb/browser"
	"github.com/quizthumb-cli/quizthumb/icon"
	"github.com/quizthumb-cli/quizthumb/log"
	"github.com/quizthumb-cli/quizthumb/msauth"
	"github.com/quizthumb-cli/quizthumb/stream"
	"github.com/quizthumb-cli/quizthumb/style"
	"github.com/quizthumb-cli/quizthumb/util"
)

const bannerWidth = 80

// Credentials authenticate against the LMS itself.
type Credentials struct {
	Username string
	Password string
}

// Summary aggregates the work done across all processed quizzes.
type Summary struct {
	// Questions inspected, whether or not they changed.
	Questions int
	// Modified questions that were actually saved.
	Modified int
}

// String renders the end-of-run report line.
func (s Summary) String() string {
	return fmt.Sprintf(
		"%s inspected, %s",
		util.Quantify(s.Questions, "question", "questions"),
		util.Quantify(s.Modified, "modified", "modified"),
	)
}

// linkFetcher resolves one video link to its tagged outcome.
type linkFetcher interface {
	Fetch(link string) stream.Outcome
}

// Runner walks quizzes and enhances their questions. It borrows the session's
// primary tab for LMS navigation; video fetches run on their own tabs.
type Runner struct {
	session    *browser.Session
	creds      Credentials
	fetcher    linkFetcher
	nameFilter string
}

// NewRunner wires a runner onto an already-launched session.
func NewRunner(session *browser.Session, creds Credentials, challenge msauth.Challenge, nameFilter string) *Runner {
	return &Runner{
		session:    session,
		creds:      creds,
		fetcher:    stream.New(session, challenge),
		nameFilter: nameFilter,
	}
}

// Run processes every quiz URL in order. A quiz that fails is reported and
// skipped; later quizzes still run. Counts accumulate across all of them.
func (r *Runner) Run(quizURLs []string) Summary {
	var summary Summary

	for i, quizURL := range quizURLs {
		fmt.Println(util.Separator(bannerWidth))
		fmt.Printf("%s Quiz %d/%d: %s\n", style.Title(" QUIZ "), i+1, len(quizURLs), quizURL)

		if err := r.runQuiz(quizURL, &summary); err != nil {
			log.Errorf("quiz %s: %v", quizURL, err)
			fmt.Printf("%s Skipping quiz: %v\n", icon.Get(icon.Fail), err)
		}
	}

	fmt.Println(util.Separator(bannerWidth))
	fmt.Printf("%s Done: %s\n", icon.Get(icon.Success), summary)
	return summary
}

// runQuiz opens one quiz's question bank and processes each question in turn.
// Question failures are isolated the same way quiz failures are.
func (r *Runner) runQuiz(quizURL string, summary *Summary) error {
	tab := r.session.Tab()

	if err := r.openQuiz(tab, quizURL); err != nil {
		return err
	}

	questions, err := r.questions(tab)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		fmt.Println(style.Faint("No description questions in this quiz"))
		return nil
	}

	for _, q := range questions {
		fmt.Printf("%s Question: %s\n", icon.Get(icon.Question), style.Bold(q.Name))

		if err := tab.Navigate(q.EditURL); err != nil {
			log.Errorf("open question %q: %v", q.Name, err)
			fmt.Printf("  %s Could not open question: %v\n", icon.Get(icon.Fail), err)
			continue
		}

		summary.Questions++
		modified, err := r.processQuestion(tab, q.Name)
		if modified {
			summary.Modified++
		}
		if err != nil {
			log.Errorf("question %q: %v", q.Name, err)
			fmt.Printf("  %s %v\n", icon.Get(icon.Fail), err)

			// The edit form may still be open; back out to the bank so the
			// next question starts from a known page.
			if backErr := r.openQuiz(tab, quizURL); backErr != nil {
				return backErr
			}
		}
	}

	return nil
}
