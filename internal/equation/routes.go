package equation

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the stateless solver under /equation and the form
// sessions backed by store under /forms.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/equation", func(r chi.Router) {
		r.Post("/solve", Solve)
		r.Post("/batch", Batch)
	})

	forms := NewForms(store)
	r.Route("/forms", func(r chi.Router) {
		r.Post("/", forms.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", forms.Get)
			r.Delete("/", forms.Delete)
			r.Patch("/inputs", forms.UpdateInputs)
			r.Post("/calculate", forms.Calculate)
			r.Post("/clear", forms.Clear)
		})
	})
}
