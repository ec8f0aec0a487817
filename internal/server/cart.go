package server

import (
	"encoding/json"
	"net/http"

	"github.com/goliatone/go-dynform/pkg/cart"
)

type cartResponse struct {
	Items []cart.Item `json:"items"`
	Total float64     `json:"total"`
	Count int         `json:"count"`
}

func (s *Server) cartSummary() cartResponse {
	return cartResponse{
		Items: s.cart.Items(),
		Total: s.cart.Total(),
		Count: s.cart.Count(),
	}
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cart.Catalog())
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cartSummary())
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	s.cart.Clear()
	writeJSON(w, http.StatusOK, s.cartSummary())
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID int `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	product, ok := cart.Find(body.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	s.cart.Add(product)
	writeJSON(w, http.StatusOK, s.cartSummary())
}

func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.cart.UpdateQuantity(id, body.Quantity)
	writeJSON(w, http.StatusOK, s.cartSummary())
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.cart.Remove(id)
	writeJSON(w, http.StatusOK, s.cartSummary())
}
