package dashboard

// UIState is what one visitor has toggled on the dashboard since opening it.
type UIState struct {
	BrandIndex           int
	TransactionsExpanded bool
	// SelectedTransaction is empty while the overview is shown.
	SelectedTransaction string
	ProfileMenuOpen     bool
	ProfileViewOpen     bool
}

func (s *UIState) cycleBrand() {
	s.BrandIndex = (s.BrandIndex + 1) % len(brands)
}

func (s *UIState) toggleTransactions() {
	s.TransactionsExpanded = !s.TransactionsExpanded
}

func (s *UIState) selectTransaction(name string) {
	s.SelectedTransaction = name
}

func (s *UIState) closeTransaction() {
	s.SelectedTransaction = ""
}

func (s *UIState) toggleProfileMenu() {
	s.ProfileMenuOpen = !s.ProfileMenuOpen
}

func (s *UIState) closeProfileMenu() {
	s.ProfileMenuOpen = false
}

// showProfile replaces the menu with the full profile view.
func (s *UIState) showProfile() {
	s.ProfileMenuOpen = false
	s.ProfileViewOpen = true
}

func (s *UIState) hideProfile() {
	s.ProfileViewOpen = false
}
