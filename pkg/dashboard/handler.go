package dashboard

import (
	"errors"
	"net/http"

	"github.com/balanceu/balanceu/internal/rest"
	"github.com/balanceu/balanceu/pkg/navigation"
	"github.com/balanceu/balanceu/pkg/theme"
	"github.com/balanceu/balanceu/pkg/user"
	log "github.com/sirupsen/logrus"
)

type BrandDTO struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Logo  string `json:"logo,omitempty"`
}

type HeaderDTO struct {
	Brand     BrandDTO `json:"brand"`
	Date      string   `json:"date"`
	Greeting  string   `json:"greeting"`
	FirstName string   `json:"firstName"`
	Avatar    string   `json:"avatar"`
}

type IntroDTO struct {
	Text       string `json:"text"`
	DurationMs int64  `json:"durationMs"`
}

type BalanceDTO struct {
	Bucket      string `json:"bucket"`
	Amount      string `json:"amount"`
	DepositLink string `json:"depositLink,omitempty"`
}

type MealTapsDTO struct {
	Remaining     int `json:"remaining"`
	AvailableWeek int `json:"availableThisWeek"`
}

type TransactionDTO struct {
	Name       string `json:"name"`
	DateTime   string `json:"dateTime"`
	Amount     string `json:"amount"`
	HasReceipt bool   `json:"hasReceipt"`
}

type TransactionsDTO struct {
	Expanded bool             `json:"expanded"`
	Items    []TransactionDTO `json:"items,omitempty"`
}

type LineItemDTO struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type HistoryEntryDTO struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

type ReceiptDTO struct {
	Merchant string            `json:"merchant"`
	Image    string            `json:"image"`
	Age      string            `json:"age"`
	Items    []LineItemDTO     `json:"items"`
	Total    string            `json:"total"`
	Bucket   string            `json:"bucket"`
	History  []HistoryEntryDTO `json:"history"`
}

// DetailDTO is the transaction detail view. Receipt is nil for transactions
// without one.
type DetailDTO struct {
	Name    string      `json:"name"`
	Receipt *ReceiptDTO `json:"receipt,omitempty"`
}

type ActionDTO struct {
	Label  string `json:"label"`
	Target string `json:"target,omitempty"`
}

type ProfileMenuDTO struct {
	Greeting  string           `json:"greeting"`
	Role      string           `json:"role"`
	StudentId string           `json:"studentId"`
	School    string           `json:"school"`
	Themes    []theme.ThemeDTO `json:"themes"`
}

type ProfileDTO struct {
	Title       string       `json:"title"`
	User        user.UserDTO `json:"user"`
	Role        string       `json:"role"`
	MemberSince string       `json:"memberSince"`
}

type ViewDTO struct {
	Header       HeaderDTO       `json:"header"`
	Theme        theme.ThemeDTO  `json:"theme"`
	Intro        *IntroDTO       `json:"intro,omitempty"`
	Balances     []BalanceDTO    `json:"balances"`
	MealTaps     MealTapsDTO     `json:"mealTaps"`
	Transactions TransactionsDTO `json:"transactions"`
	Detail       *DetailDTO      `json:"detail,omitempty"`
	QuickActions []ActionDTO     `json:"quickActions"`
	BottomMenu   []ActionDTO     `json:"bottomMenu"`
	ProfileMenu  *ProfileMenuDTO `json:"profileMenu,omitempty"`
	Profile      *ProfileDTO     `json:"profile,omitempty"`
}

type SelectTransactionRequest struct {
	Name string `json:"name"`
}

type NavigateRequest struct {
	Target string `json:"target"`
}

type Handler struct {
	service Service
	themes  theme.Service
}

func NewHandler(service Service, themes theme.Service) *Handler {
	return &Handler{service: service, themes: themes}
}

func (h *Handler) Screen(w http.ResponseWriter, r *http.Request) {
	log.Trace("Opening dashboard")
	overview, err := h.service.Open(r.Context())
	h.respond(w, r, overview, err)
}

func (h *Handler) CycleBrand(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.CycleBrand(r.Context())
	h.respond(w, r, overview, err)
}

func (h *Handler) ToggleTransactions(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.ToggleTransactions(r.Context())
	h.respond(w, r, overview, err)
}

func (h *Handler) SelectTransaction(w http.ResponseWriter, r *http.Request) {
	var request SelectTransactionRequest
	if !rest.DecodeBody(w, r, &request) {
		return
	}
	log.Debugf("Selecting transaction %q", request.Name)
	overview, err := h.service.SelectTransaction(r.Context(), request.Name)
	h.respond(w, r, overview, err)
}

func (h *Handler) CloseTransaction(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.CloseTransaction(r.Context())
	h.respond(w, r, overview, err)
}

func (h *Handler) ToggleProfileMenu(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.ToggleProfileMenu(r.Context())
	h.respond(w, r, overview, err)
}

func (h *Handler) ShowProfile(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.ShowProfile(r.Context())
	h.respond(w, r, overview, err)
}

func (h *Handler) HideProfile(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.HideProfile(r.Context())
	h.respond(w, r, overview, err)
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var request NavigateRequest
	if !rest.DecodeBody(w, r, &request) {
		return
	}
	current := h.themes.CurrentTheme(r.Context(), r.URL.Query().Get("theme"))
	link, err := h.service.Navigate(r.Context(), request.Target, current.Key)
	if err != nil {
		if errors.Is(err, ErrUnknownTarget) {
			rest.WriteError(w, http.StatusBadRequest, "Unknown target", err.Error())
			return
		}
		log.Errorf("dashboard navigation failed: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Navigation failed", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, rest.RedirectResponse{Redirect: link})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, overview Overview, err error) {
	if err != nil {
		log.Errorf("dashboard update failed: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Dashboard update failed", err.Error())
		return
	}
	current := h.themes.CurrentTheme(r.Context(), r.URL.Query().Get("theme"))
	rest.WriteJSON(w, http.StatusOK, ToDTO(overview, current))
}

func ToDTO(o Overview, th theme.Theme) ViewDTO {
	brand := brands[o.UI.BrandIndex%len(brands)]
	view := ViewDTO{
		Header: HeaderDTO{
			Brand:     BrandDTO{Index: o.UI.BrandIndex, Name: brand.Name, Logo: brand.Logo},
			Date:      o.Date,
			Greeting:  "Welcome",
			FirstName: o.User.FirstName(),
			Avatar:    o.User.Avatar,
		},
		Theme:        theme.ToDTO(th),
		MealTaps:     MealTapsDTO{Remaining: Taps().Remaining, AvailableWeek: Taps().AvailableWeek},
		Transactions: TransactionsDTO{Expanded: o.UI.TransactionsExpanded},
		QuickActions: []ActionDTO{
			{Label: "Request Funds", Target: navigation.Link(navigation.RequestFundsPath, th.Key)},
			{Label: "Deposit Funds", Target: navigation.Link(navigation.DepositPath, th.Key)},
			{Label: "Gift Meals"},
		},
	}

	if o.Intro != nil {
		view.Intro = &IntroDTO{Text: o.Intro.Text, DurationMs: o.Intro.Duration.Milliseconds()}
	}

	for _, b := range Balances() {
		dto := BalanceDTO{Bucket: string(b.Bucket), Amount: "$" + b.Amount.StringFixed(2)}
		if b.Depositable {
			dto.DepositLink = navigation.Link(navigation.DepositPath, th.Key)
		}
		view.Balances = append(view.Balances, dto)
	}

	if o.UI.TransactionsExpanded {
		for _, t := range Transactions() {
			_, hasReceipt := ReceiptFor(t.Name)
			view.Transactions.Items = append(view.Transactions.Items, TransactionDTO{
				Name:       t.Name,
				DateTime:   t.DateTime,
				Amount:     t.Amount,
				HasReceipt: hasReceipt,
			})
		}
	}

	if o.UI.SelectedTransaction != "" {
		view.Detail = &DetailDTO{Name: o.UI.SelectedTransaction}
		if receipt, ok := ReceiptFor(o.UI.SelectedTransaction); ok {
			view.Detail.Receipt = receiptToDTO(receipt)
		}
	}

	for _, item := range navigation.BottomMenu(th.Key) {
		view.BottomMenu = append(view.BottomMenu, ActionDTO{Label: item.Label, Target: item.Target})
	}

	if o.UI.ProfileMenuOpen {
		menu := &ProfileMenuDTO{
			Greeting:  "Welcome " + o.User.FirstName(),
			Role:      "Student",
			StudentId: "STUDENT ID: 123456",
			School:    "The University of BalanceU",
		}
		for _, t := range theme.Catalog() {
			menu.Themes = append(menu.Themes, theme.ToDTO(t))
		}
		view.ProfileMenu = menu
	}

	if o.UI.ProfileViewOpen {
		view.Profile = &ProfileDTO{
			Title:       o.User.FirstName() + "'s Profile",
			User:        user.ToDTO(o.User),
			Role:        "Student",
			MemberSince: "January 2024",
		}
	}
	return view
}

func receiptToDTO(r Receipt) *ReceiptDTO {
	dto := &ReceiptDTO{
		Merchant: r.Merchant,
		Image:    r.Image,
		Age:      r.Age,
		Total:    "$" + r.Total().StringFixed(2),
		Bucket:   string(r.Bucket),
	}
	for _, item := range r.Items {
		dto.Items = append(dto.Items, LineItemDTO{Description: item.Description, Amount: "$" + item.Amount.StringFixed(2)})
	}
	for _, entry := range r.History {
		dto.History = append(dto.History, HistoryEntryDTO{Date: entry.Date, Amount: "$" + entry.Amount.StringFixed(2)})
	}
	return dto
}
