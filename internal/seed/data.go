package seed

import "github.com/deppfellow/starwars-api/internal/model"

func str(s string) *string { return &s }

func num(n int64) *int64 { return &n }

// Users returns the sample users. Passwords are placeholders; nothing in
// the API authenticates against them.
func Users() []model.User {
	return []model.User{
		{Email: "luke@rebelalliance.org", Password: "seed-only", IsActive: true},
		{Email: "leia@rebelalliance.org", Password: "seed-only", IsActive: true},
	}
}

func Personajes() []model.Personaje {
	return []model.Personaje{
		{Nombre: "Luke Skywalker", Altura: num(172), Peso: num(77), ColorCabello: str("blond"), ColorPiel: str("fair"), ColorOjos: str("blue"), FechaNacimiento: str("19BBY"), Genero: str("male")},
		{Nombre: "Leia Organa", Altura: num(150), Peso: num(49), ColorCabello: str("brown"), ColorPiel: str("light"), ColorOjos: str("brown"), FechaNacimiento: str("19BBY"), Genero: str("female")},
		{Nombre: "Darth Vader", Altura: num(202), Peso: num(136), ColorCabello: str("none"), ColorPiel: str("white"), ColorOjos: str("yellow"), FechaNacimiento: str("41.9BBY"), Genero: str("male")},
		{Nombre: "Han Solo", Altura: num(180), Peso: num(80), ColorCabello: str("brown"), ColorPiel: str("fair"), ColorOjos: str("brown"), FechaNacimiento: str("29BBY"), Genero: str("male")},
		{Nombre: "Yoda", Altura: num(66), Peso: num(17), ColorCabello: str("white"), ColorPiel: str("green"), ColorOjos: str("brown"), FechaNacimiento: str("896BBY"), Genero: str("male")},
	}
}

func Planetas() []model.Planeta {
	return []model.Planeta{
		{Nombre: "Tatooine", Clima: str("arid"), Poblacion: num(200000), Terreno: str("desert"), Diametro: num(10465)},
		{Nombre: "Alderaan", Clima: str("temperate"), Poblacion: num(2000000000), Terreno: str("grasslands"), Diametro: num(12500)},
		{Nombre: "Hoth", Clima: str("frozen"), Terreno: str("tundra"), Diametro: num(7200)},
		{Nombre: "Dagobah", Clima: str("murky"), Terreno: str("swamp"), Diametro: num(8900)},
		{Nombre: "Naboo", Clima: str("temperate"), Poblacion: num(4500000000), Terreno: str("grassy hills"), Diametro: num(12120)},
	}
}
