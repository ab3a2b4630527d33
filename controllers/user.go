package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"phihorizon/models"
	"phihorizon/store"
	"phihorizon/utils"
)

// UserController handles auth, profile and address requests
type UserController struct {
	Store *store.Store
	Log   *logrus.Entry
}

// NewUserController creates a new UserController
func NewUserController(s *store.Store, logger *logrus.Logger) *UserController {
	return &UserController{
		Store: s,
		Log:   logger.WithField("controller", "user"),
	}
}

func roleFor(u *models.User) string {
	if u != nil && u.IsAdmin {
		return "admin"
	}
	return "user"
}

// Login handles user login. Any non-empty email and password succeeds.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := json.NewDecoder(r.Body).Decode(&creds)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if !uc.Store.Login(creds.Email, creds.Password) {
		http.Error(w, "Email and password are required", http.StatusUnauthorized)
		return
	}

	user := uc.Store.User()
	token, err := utils.GenerateJWT(user.ID, user.Email, roleFor(user))
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if !uc.Store.Register(body.Email, body.Password, body.Name) {
		http.Error(w, "Email, password and name are required", http.StatusBadRequest)
		return
	}

	user := uc.Store.User()
	token, err := utils.GenerateJWT(user.ID, user.Email, roleFor(user))
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Logout clears the session. Order history survives logout.
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	uc.Store.Logout()
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
}

// GetProfile returns the current user
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := uc.Store.User()
	if user == nil {
		http.Error(w, "Not logged in", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// UpdateProfile sets the user's display name and phone
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := uc.Store.UpdateProfile(body.Name, body.Phone); err != nil {
		http.Error(w, "Not logged in", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(uc.Store.User())
}

// AddAddress appends an address to the current user
func (uc *UserController) AddAddress(w http.ResponseWriter, r *http.Request) {
	var addr models.Address
	err := json.NewDecoder(r.Body).Decode(&addr)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	created, err := uc.Store.AddAddress(addr)
	if err != nil {
		http.Error(w, "Not logged in", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

// UpdateAddress replaces an existing address
func (uc *UserController) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var addr models.Address
	err := json.NewDecoder(r.Body).Decode(&addr)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	addr.ID = mux.Vars(r)["id"]

	if err := uc.Store.UpdateAddress(addr); err != nil {
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(uc.Store.User())
}

// DeleteAddress removes an address
func (uc *UserController) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	if err := uc.Store.DeleteAddress(mux.Vars(r)["id"]); err != nil {
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Address deleted"})
}
