package event_bus

import "github.com/shopspring/decimal"

type UserLoggedIn struct {
	Username string
}

type UserLoggedOut struct {
	Username string
}

type ThemeChanged struct {
	From string
	To   string
}

type ShareLinkGenerated struct {
	ShareId string
	Bucket  string
	Amount  decimal.Decimal
	Link    string
}
