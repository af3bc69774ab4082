package server

func (s *FiberServer) RegisterFiberRoutes() {
	s.routes.HealthRoutes(s.App)
	s.routes.SearchRoutes(s.App)
	s.Static("/", s.publicDir)
}
