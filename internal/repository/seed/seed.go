// Package seed содержит канонический набор начальных данных каталога,
// общий для хранилища в памяти и PostgreSQL.
package seed

import "github.com/DRSN-tech/catalog/internal/domain"

// Product — товар начального набора. Категория задаётся слагом,
// так как идентификаторы назначает конкретное хранилище.
type Product struct {
	Name         string
	Description  string
	Price        float64
	ImageURL     string
	CategorySlug string
	Rating       float64
	ReviewCount  int
}

// Set — полный начальный набор.
type Set struct {
	Categories   []domain.CategoryInput
	Products     []Product
	Testimonials []domain.TestimonialInput
}

// Canonical возвращает новый экземпляр канонического набора.
func Canonical() Set {
	return Set{
		Categories: []domain.CategoryInput{
			{Name: "Pulseras", Slug: "pulseras", ImageURL: domain.Ptr("/images/categoria-pulseras.png")},
			{Name: "Collares", Slug: "collares", ImageURL: domain.Ptr("/images/categoria-collares.png")},
			{Name: "Aretes", Slug: "aretes", ImageURL: domain.Ptr("/images/categoria-aretes.png")},
			{Name: "Anillos", Slug: "anillos", ImageURL: domain.Ptr("/images/categoria-anillos.png")},
		},
		Products: []Product{
			{
				Name:         "Pulsera de Corazones",
				Description:  "Pulsera hecha a mano con cuentas Miyuki en tonos rojos y dorados, con un diseño delicado de corazones.",
				Price:        320,
				ImageURL:     "/images/pulsera-corazones.png",
				CategorySlug: "pulseras",
				Rating:       4.8,
				ReviewCount:  24,
			},
			{
				Name:         "Collar Flor de Loto",
				Description:  "Hermoso collar con pendiente de flor de loto, elaborado con cuentas Miyuki en tonos dorados, rojos y verdes.",
				Price:        450,
				ImageURL:     "/images/collar-miyuki.svg",
				CategorySlug: "collares",
				Rating:       4.9,
				ReviewCount:  18,
			},
			{
				Name:         "Aretes de Mariposa",
				Description:  "Aretes ligeros con diseño geométrico, hechos con cuentas Miyuki en colores vibrantes que combinan con cualquier atuendo.",
				Price:        280,
				ImageURL:     "/images/aretes-miyuki.svg",
				CategorySlug: "aretes",
				Rating:       4.7,
				ReviewCount:  31,
			},
			{
				Name:         "Anillo Ajustable Estrella",
				Description:  "Anillo ajustable con diseño tablero, elaborado con cuentas Miyuki en tonos dorados y rojos.",
				Price:        220,
				ImageURL:     "/images/anillo-miyuki.svg",
				CategorySlug: "anillos",
				Rating:       4.6,
				ReviewCount:  12,
			},
		},
		Testimonials: []domain.TestimonialInput{
			{
				CustomerName:  "Laura Martínez",
				CustomerImage: domain.Ptr("https://randomuser.me/api/portraits/women/62.jpg"),
				Comment:       "Las piezas de Miyuki son increíblemente hermosas y únicas. Recibí muchos cumplidos por mi collar y siempre recomiendo esta tienda. La calidad es excepcional.",
				Rating:        5,
				CustomerSince: domain.Ptr("2021"),
			},
			{
				CustomerName:  "Carlos Rodríguez",
				CustomerImage: domain.Ptr("https://randomuser.me/api/portraits/men/41.jpg"),
				Comment:       "Compré una pulsera como regalo para mi hija y quedó encantada. El servicio fue excelente y el empaque muy elegante. Definitivamente volveré a comprar.",
				Rating:        5,
				CustomerSince: domain.Ptr("2022"),
			},
			{
				CustomerName:  "Ana García",
				CustomerImage: domain.Ptr("https://randomuser.me/api/portraits/women/33.jpg"),
				Comment:       "La atención personalizada que me brindaron fue excepcional. Las piezas son tan delicadas y hermosas como se ven en las fotos. Me encanta que cada pieza sea única.",
				Rating:        4,
				CustomerSince: domain.Ptr("2020"),
			},
		},
	}
}
