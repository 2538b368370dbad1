package navigation

import (
	"net/url"

	"github.com/balanceu/balanceu/pkg/theme"
	log "github.com/sirupsen/logrus"
)

const (
	RootPath         = "/"
	LoginPath        = "/login"
	DashboardPath    = "/balanceu"
	DepositPath      = "/deposit"
	RequestFundsPath = "/requestFunds"
)

// Link returns path with the theme carried as the "theme" query parameter.
// Existing query parameters are kept.
func Link(path string, key theme.Key) string {
	u, err := url.Parse(path)
	if err != nil {
		log.Debugf("cannot parse navigation path %q: %v", path, err)
		return path
	}
	query := u.Query()
	query.Set("theme", string(key))
	u.RawQuery = query.Encode()
	return u.String()
}

// History is one visitor's stack of previously shown screens.
type History struct {
	entries []string
}

func (h *History) push(path string) {
	if path == "" {
		return
	}
	h.entries = append(h.entries, path)
}

func (h *History) pop() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

func (h *History) Depth() int {
	return len(h.entries)
}

type MenuItem struct {
	Label  string
	Target string
}

// BottomMenu lists the dashboard's navigation sheet. Only items with a Target
// lead anywhere.
func BottomMenu(key theme.Key) []MenuItem {
	return []MenuItem{
		{Label: "View Balances"},
		{Label: "Gift/Donate Meals"},
		{Label: "Deposit Funds", Target: Link(DepositPath, key)},
		{Label: "View Transactions"},
		{Label: "Meal Plan Information"},
		{Label: "Contact Support"},
	}
}
