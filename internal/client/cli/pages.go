package cli

// Page identifies one screen of the terminal UI.
type Page string

const (
	PageWelcome       Page = "welcome"
	PageLogin         Page = "login"
	PageDashboard     Page = "dashboard"
	PageMockInterview Page = "mock-interview"
	PageResumeBuilder Page = "resume-builder"
	PageResumeAnalyze Page = "resume-analyzer"
	PageFluencyTester Page = "fluency-tester"
	PageChatbox       Page = "chatbox"
	PageProgress      Page = "progress"
	PageTips          Page = "tips"
)

// featurePages are the screens reachable from the dashboard.
var featurePages = map[Page]bool{
	PageMockInterview: true,
	PageResumeBuilder: true,
	PageResumeAnalyze: true,
	PageFluencyTester: true,
	PageChatbox:       true,
	PageProgress:      true,
	PageTips:          true,
}

var knownPages = map[string]Page{
	string(PageWelcome):       PageWelcome,
	string(PageLogin):         PageLogin,
	string(PageDashboard):     PageDashboard,
	string(PageMockInterview): PageMockInterview,
	string(PageResumeBuilder): PageResumeBuilder,
	string(PageResumeAnalyze): PageResumeAnalyze,
	string(PageFluencyTester): PageFluencyTester,
	string(PageChatbox):       PageChatbox,
	string(PageProgress):      PageProgress,
	string(PageTips):          PageTips,
}

// Transition returns the page that follows current after the given target.
// A target is either a page identifier or the verbs "back" and
// "get-started". Moves not listed below keep the current page, except that
// an identifier naming no page at all lands on the welcome screen.
func Transition(current Page, target string) Page {
	switch target {
	case "back":
		switch {
		case current == PageLogin:
			return PageWelcome
		case featurePages[current]:
			return PageDashboard
		}
		return current
	case "get-started":
		if current == PageWelcome {
			return PageLogin
		}
		return current
	}

	next, ok := knownPages[target]
	if !ok {
		return PageWelcome
	}

	switch current {
	case PageWelcome:
		if next == PageLogin {
			return PageLogin
		}
	case PageLogin:
		if next == PageDashboard || next == PageWelcome {
			return next
		}
	case PageDashboard:
		if featurePages[next] {
			return next
		}
	default:
		if featurePages[current] && next == PageDashboard {
			return PageDashboard
		}
	}
	return current
}
