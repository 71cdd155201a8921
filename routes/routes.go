package routes

import (
	"net/http"

	"saaj/auth"
	"saaj/cart"
	"saaj/catalog"
	"saaj/checkout"
	"saaj/contact"
	"saaj/email"
	"saaj/invoice"
	"saaj/live"
	"saaj/middleware"
	"saaj/orderbuilder"
	"saaj/orders"
	"saaj/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/images/*filepath", http.Dir("static/images"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", middleware.OptionalAuth(cart.GetCart))
	router.POST("/api/cart/items", ratelim.RateLimit(middleware.OptionalAuth(cart.AddItem)))
	router.PUT("/api/cart/items/:productid", ratelim.RateLimit(middleware.OptionalAuth(cart.UpdateQuantity)))
	router.DELETE("/api/cart/items/:productid", ratelim.RateLimit(middleware.OptionalAuth(cart.RemoveItem)))
	router.DELETE("/api/cart", ratelim.RateLimit(middleware.OptionalAuth(cart.ClearCart)))
}

func AddCheckoutRoutes(router *httprouter.Router) {
	router.POST("/api/checkout", ratelim.RateLimit(middleware.OptionalAuth(checkout.PlaceOrder)))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.GET("/api/orders", middleware.RequireAdmin(orders.GetOrders))
	router.GET("/api/orders/:orderid", middleware.RequireAdmin(orders.GetOrder))
	router.PATCH("/api/orders/:orderid/status", middleware.RequireAdmin(orders.UpdateOrderStatus))
	router.DELETE("/api/orders/:orderid", middleware.RequireAdmin(orders.DeleteOrder))
	router.GET("/api/orders/:orderid/invoice", middleware.RequireAdmin(invoice.GetInvoice))
	router.POST("/api/orders/manual", ratelim.RateLimit(middleware.RequireAdmin(orderbuilder.CreateManualOrder)))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/products", catalog.GetProducts)
	router.GET("/api/products/:productid", catalog.GetProduct)
	router.POST("/api/products", ratelim.RateLimit(middleware.RequireAdmin(catalog.CreateProduct)))
	router.PUT("/api/products/:productid", ratelim.RateLimit(middleware.RequireAdmin(catalog.UpdateProduct)))
	router.PUT("/api/products/:productid/image", ratelim.RateLimit(middleware.RequireAdmin(catalog.UpdateProductImage)))
	router.PATCH("/api/products/:productid/stock", ratelim.RateLimit(middleware.RequireAdmin(catalog.AdjustStock)))
	router.DELETE("/api/products/:productid", middleware.RequireAdmin(catalog.DeleteProduct))

	router.GET("/api/categories", catalog.GetCategories)
	router.POST("/api/categories", ratelim.RateLimit(middleware.RequireAdmin(catalog.CreateCategory)))
	router.PUT("/api/categories/:categoryid", ratelim.RateLimit(middleware.RequireAdmin(catalog.UpdateCategory)))
	router.DELETE("/api/categories/:categoryid", middleware.RequireAdmin(catalog.DeleteCategory))

	router.GET("/api/brands", catalog.GetBrands)
	router.POST("/api/brands", ratelim.RateLimit(middleware.RequireAdmin(catalog.CreateBrand)))
	router.PUT("/api/brands/:brandid", ratelim.RateLimit(middleware.RequireAdmin(catalog.UpdateBrand)))
	router.DELETE("/api/brands/:brandid", middleware.RequireAdmin(catalog.DeleteBrand))
}

func AddContactRoutes(router *httprouter.Router, mailer *email.Mailer) {
	router.POST("/api/contacts", ratelim.RateLimit(contact.CreateContact(mailer)))
	router.GET("/api/contacts", middleware.RequireAdmin(contact.GetContacts))
	router.PATCH("/api/contacts/:contactid/read", middleware.RequireAdmin(contact.MarkContactRead))
	router.DELETE("/api/contacts/:contactid", middleware.RequireAdmin(contact.DeleteContact))
}

// AddEmailRoutes wires the standalone send endpoints. They manage their own
// preflight and verb handling, so both verbs route to the same handler.
func AddEmailRoutes(router *httprouter.Router, mailer *email.Mailer) {
	contactHandler := ratelim.RateLimit(email.SendContactEmail(mailer))
	orderHandler := ratelim.RateLimit(email.SendOrderEmails(mailer))

	router.POST("/api/send-contact-email", contactHandler)
	router.OPTIONS("/api/send-contact-email", contactHandler)
	router.POST("/api/send-order-emails", orderHandler)
	router.OPTIONS("/api/send-order-emails", orderHandler)
}

func AddLiveRoutes(router *httprouter.Router) {
	router.GET("/ws/orders", live.OrderFeed(live.Default))
}
