package handler

import (
	"hitbox/backend/internal/catalog"
	"hitbox/backend/internal/resolver"
)

// Collaborators wired once at startup.
var (
	Catalog      *catalog.Client
	GameResolver *resolver.Resolver
)

// Init wires the catalog clients into the handler package.
func Init(igdb *catalog.Client, rawg *catalog.RAWGClient) {
	Catalog = igdb
	GameResolver = resolver.New(igdb, rawg)
}
