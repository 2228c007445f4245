package order

import (
	"net/http"

	"MiniShop/pkg/kit"
)

func listOrders(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, Fixed())
}
