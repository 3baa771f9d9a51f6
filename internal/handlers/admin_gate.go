package handlers

import (
	"net/http"

	"catalog-backend/internal/transport"
)

type loginRequest struct {
	Passcode string `json:"passcode"`
}

func (s *Server) OpenGate(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	sess.OpenGate()
	s.writeSnapshot(w, sess)
}

func (s *Server) CloseGate(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	sess.CloseGate()
	s.writeSnapshot(w, sess)
}

// AdminLogin checks the passcode. A wrong passcode is not an error for the
// dialog, so the snapshot is returned with 401 and the error notice.
func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	var req loginRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	if !sess.Login(req.Passcode) {
		log.Warn("admin login: rejected")
		transport.WriteJSON(w, http.StatusUnauthorized, eventResponse{Snapshot: sess.Snapshot(), Error: "invalid passcode"})
		return
	}
	log.Info("admin login: ok")
	s.writeSnapshot(w, sess)
}

func (s *Server) AdminLogout(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	sess.Logout()
	s.writeSnapshot(w, sess)
}
