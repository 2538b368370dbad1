package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all screens and API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	r.HandleFunc("/", deps.NavigationHandler.RootRedirect).Methods("GET")

	// Login
	r.HandleFunc("/login", deps.UserHandler.LoginScreen).Methods("GET")
	r.HandleFunc("/login", deps.UserHandler.Login).Methods("POST")
	r.HandleFunc("/logout", deps.UserHandler.Logout).Methods("POST")
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")

	// Theme
	r.HandleFunc("/api/theme", deps.ThemeHandler.GetThemes).Methods("GET")
	r.HandleFunc("/api/theme", deps.ThemeHandler.SetTheme).Methods("PUT")

	// Navigation
	r.HandleFunc("/api/navigate", deps.NavigationHandler.Navigate).Methods("POST")
	r.HandleFunc("/api/navigate/back", deps.NavigationHandler.Back).Methods("POST")

	// Dashboard
	r.HandleFunc("/balanceu", deps.DashboardHandler.Screen).Methods("GET")
	r.HandleFunc("/balanceu/brand", deps.DashboardHandler.CycleBrand).Methods("POST")
	r.HandleFunc("/balanceu/transactions/toggle", deps.DashboardHandler.ToggleTransactions).Methods("POST")
	r.HandleFunc("/balanceu/transactions/select", deps.DashboardHandler.SelectTransaction).Methods("POST")
	r.HandleFunc("/balanceu/transactions/back", deps.DashboardHandler.CloseTransaction).Methods("POST")
	r.HandleFunc("/balanceu/profile-menu/toggle", deps.DashboardHandler.ToggleProfileMenu).Methods("POST")
	r.HandleFunc("/balanceu/profile/show", deps.DashboardHandler.ShowProfile).Methods("POST")
	r.HandleFunc("/balanceu/profile/hide", deps.DashboardHandler.HideProfile).Methods("POST")
	r.HandleFunc("/balanceu/navigate", deps.DashboardHandler.Navigate).Methods("POST")

	// Deposit
	r.HandleFunc("/deposit", deps.DepositHandler.Screen).Methods("GET")
	r.HandleFunc("/deposit/bucket", deps.DepositHandler.SelectBucket).Methods("POST")
	r.HandleFunc("/deposit/amount", deps.DepositHandler.SelectAmount).Methods("POST")
	r.HandleFunc("/deposit/back", deps.DepositHandler.Back).Methods("POST")
	r.HandleFunc("/deposit/change-amount", deps.DepositHandler.ChangeAmount).Methods("POST")
	r.HandleFunc("/deposit/change-bucket", deps.DepositHandler.ChangeBucket).Methods("POST")

	// Request funds
	r.HandleFunc("/requestFunds", deps.RequestFundsHandler.Screen).Methods("GET")
	r.HandleFunc("/requestFunds/bucket", deps.RequestFundsHandler.SelectBucket).Methods("POST")
	r.HandleFunc("/requestFunds/amount", deps.RequestFundsHandler.SelectAmount).Methods("POST")
	r.HandleFunc("/requestFunds/back", deps.RequestFundsHandler.Back).Methods("POST")
	r.HandleFunc("/requestFunds/change-amount", deps.RequestFundsHandler.ChangeAmount).Methods("POST")
	r.HandleFunc("/requestFunds/change-bucket", deps.RequestFundsHandler.ChangeBucket).Methods("POST")
	r.HandleFunc("/requestFunds/share", deps.RequestFundsHandler.Share).Methods("POST")
}
