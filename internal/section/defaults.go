package section

type catalogEntry struct {
	kind  Kind
	label string
	props Props
}

// Defaults returns a fresh copy of the initial props for a manually added
// section of typ.
func Defaults(typ string) (Props, bool) {
	entry, ok := catalog[typ]
	if !ok {
		return nil, false
	}
	return entry.props.Clone(), true
}

// KnownType reports whether typ is part of the closed section vocabulary.
func KnownType(typ string) bool {
	_, ok := catalog[typ]
	return ok
}

func list(items ...map[string]any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func heroProps(extra Props) Props {
	p := Props{
		"title":           "İşletmenize Hoş Geldiniz",
		"subtitle":        "Kaliteli hizmet, güler yüz",
		"description":     "Size en iyi deneyimi sunmak için buradayız.",
		"buttonText":      "İletişime Geçin",
		"buttonLink":      "#contact",
		"backgroundImage": "",
	}
	for k, v := range extra {
		p[k] = v
	}
	return p
}

func servicesProps(title string) Props {
	return Props{
		"sectionTitle":    title,
		"sectionSubtitle": "Size sunduğumuz hizmetler",
		"services": list(
			map[string]any{"title": "Hizmet 1", "description": "Hizmet açıklaması", "icon": "star", "image": ""},
			map[string]any{"title": "Hizmet 2", "description": "Hizmet açıklaması", "icon": "heart", "image": ""},
			map[string]any{"title": "Hizmet 3", "description": "Hizmet açıklaması", "icon": "check", "image": ""},
		),
	}
}

func appointmentProps(title string) Props {
	return Props{
		"title":      title,
		"subtitle":   "Size uygun zamanı seçin",
		"submitText": "Gönder",
		"phone":      "",
	}
}

var catalog = map[string]catalogEntry{
	"HeroCafe":       {kind: KindHero, label: "Kafe Girişi", props: heroProps(Props{"badge": ""})},
	"HeroRestaurant": {kind: KindHero, label: "Restoran Girişi", props: heroProps(Props{"badge": ""})},
	"HeroDental":     {kind: KindHero, label: "Klinik Girişi", props: heroProps(Props{"buttonText": "Randevu Al"})},
	"HeroHotel":      {kind: KindHero, label: "Otel Girişi", props: heroProps(Props{"buttonText": "Oda Ayırt"})},
	"HeroLaw":        {kind: KindHero, label: "Hukuk Bürosu Girişi", props: heroProps(nil)},
	"HeroSplit":      {kind: KindHero, label: "İkiye Bölünmüş Giriş", props: heroProps(Props{"image": ""})},
	"HeroCentered":   {kind: KindHero, label: "Ortalanmış Giriş", props: heroProps(nil)},
	"HeroVideo":      {kind: KindHero, label: "Videolu Giriş", props: heroProps(Props{"video": map[string]any{"src": "", "poster": ""}})},
	"HeroPortfolio": {kind: KindHero, label: "Portfolyo Girişi", props: Props{
		"name":  "Adınız Soyadınız",
		"bio":   "Kısa bir tanıtım yazısı",
		"title": "Yaratıcı İşler",
		"image": "",
	}},

	"ServicesGrid":   {kind: KindServices, label: "Hizmet Kartları", props: servicesProps("Hizmetlerimiz")},
	"ServicesList":   {kind: KindServices, label: "Hizmet Listesi", props: servicesProps("Hizmetlerimiz")},
	"DentalServices": {kind: KindServices, label: "Diş Tedavileri", props: servicesProps("Tedavilerimiz")},
	"FeaturesGrid": {kind: KindServices, label: "Özellikler", props: Props{
		"sectionTitle": "Neden Biz?",
		"features": list(
			map[string]any{"title": "Deneyim", "description": "Yılların birikimi", "icon": "award"},
			map[string]any{"title": "Kalite", "description": "Özenli işçilik", "icon": "shield"},
			map[string]any{"title": "Güven", "description": "Şeffaf iletişim", "icon": "handshake"},
		),
	}},
	"TreatmentList": {kind: KindServices, label: "Bakım Listesi", props: Props{
		"sectionTitle": "Tedavilerimiz",
		"treatments": list(
			map[string]any{"name": "Bakım 1", "description": "Açıklama", "duration": "45 dk", "price": ""},
			map[string]any{"name": "Bakım 2", "description": "Açıklama", "duration": "60 dk", "price": ""},
		),
	}},
	"PracticeAreas": {kind: KindServices, label: "Çalışma Alanları", props: Props{
		"sectionTitle": "Çalışma Alanlarımız",
		"areas": list(
			map[string]any{"title": "Alan 1", "description": "Açıklama", "icon": "scale"},
			map[string]any{"title": "Alan 2", "description": "Açıklama", "icon": "briefcase"},
		),
	}},

	"AboutSplit": {kind: KindAbout, label: "Hakkımızda", props: Props{
		"title":       "Hakkımızda",
		"description": "İşletmenizin hikayesini anlatın.",
		"image":       "",
	}},
	"AboutStory": {kind: KindAbout, label: "Hikayemiz", props: Props{
		"title":       "Hikayemiz",
		"description": "Nasıl başladığınızı anlatın.",
		"image":       "",
		"signature":   "",
	}},
	"AboutCafe": {kind: KindAbout, label: "Kafe Hikayesi", props: Props{
		"title":       "Kahve Tutkumuz",
		"description": "Kafenizin hikayesini anlatın.",
		"image":       "",
		"highlights":  list(map[string]any{"label": "Taze çekirdek"}, map[string]any{"label": "Ev yapımı tatlılar"}),
	}},

	"ContactForm": {kind: KindContact, label: "İletişim Formu", props: Props{
		"sectionTitle": "Bize Ulaşın",
		"phone":        "",
		"email":        "",
		"address":      "",
		"submitText":   "Gönder",
	}},
	"ContactInfo": {kind: KindContact, label: "İletişim Bilgileri", props: Props{
		"sectionTitle": "İletişim",
		"phone":        "",
		"email":        "",
		"address":      "",
		"workingHours": "Hafta içi 09:00 - 18:00",
	}},
	"ContactMap": {kind: KindContact, label: "Harita", props: Props{
		"sectionTitle": "Bizi Ziyaret Edin",
		"address":      "",
		"mapQuery":     "",
	}},

	"CTABanner": {kind: KindCTA, label: "Eylem Çağrısı", props: Props{
		"title":           "Bizimle Tanışın",
		"description":     "Hemen iletişime geçin.",
		"buttonText":      "İletişime Geçin",
		"buttonLink":      "#contact",
		"backgroundImage": "",
	}},
	"CTASplit": {kind: KindCTA, label: "İkiye Bölünmüş Eylem Çağrısı", props: Props{
		"title":       "Bizimle Tanışın",
		"description": "Hemen iletişime geçin.",
		"buttonText":  "Başlayın",
		"image":       "",
	}},

	"TeamGrid": {kind: KindTeam, label: "Ekip", props: Props{
		"sectionTitle": "Ekibimiz",
		"title":        "",
		"description":  "",
		"members": list(
			map[string]any{"name": "Ekip Üyesi", "role": "Uzman", "image": "", "bio": ""},
			map[string]any{"name": "Ekip Üyesi", "role": "Uzman", "image": "", "bio": ""},
		),
	}},
	"ChefProfile": {kind: KindTeam, label: "Şef Profili", props: Props{
		"sectionTitle": "Şefimiz",
		"name":         "Şefin Adı",
		"bio":          "Şefin mutfak yolculuğu",
		"image":        "",
	}},

	"TestimonialsGrid": {kind: KindTestimonials, label: "Yorumlar", props: Props{
		"sectionTitle": "Müşterilerimiz Ne Diyor?",
		"testimonials": list(
			map[string]any{"name": "Ayşe K.", "role": "Müşteri", "content": "Harika bir deneyimdi.", "rating": float64(5), "avatar": ""},
			map[string]any{"name": "Mehmet D.", "role": "Müşteri", "content": "Kesinlikle tavsiye ederim.", "rating": float64(5), "avatar": ""},
			map[string]any{"name": "Zeynep A.", "role": "Müşteri", "content": "Çok memnun kaldım.", "rating": float64(5), "avatar": ""},
		),
	}},
	"TestimonialsCarousel": {kind: KindTestimonials, label: "Yorum Karuseli", props: Props{
		"sectionTitle": "Müşterilerimiz Ne Diyor?",
		"testimonials": list(
			map[string]any{"name": "Ayşe K.", "role": "Müşteri", "content": "Harika bir deneyimdi.", "avatar": ""},
			map[string]any{"name": "Mehmet D.", "role": "Müşteri", "content": "Kesinlikle tavsiye ederim.", "avatar": ""},
		),
	}},

	"AppointmentBooking": {kind: KindAppointment, label: "Randevu Formu", props: appointmentProps("Randevu Alın")},
	"DentalBooking": {kind: KindAppointment, label: "Diş Randevusu", props: Props{
		"title":      "Randevu Alın",
		"subtitle":   "Muayene için uygun zamanı seçin",
		"buttonText": "Randevu Oluştur",
		"doctors":    list(map[string]any{"name": "Dt. Hekim", "specialty": "Genel Diş Hekimliği"}),
	}},
	"ReservationForm": {kind: KindAppointment, label: "Rezervasyon Formu", props: Props{
		"title":      "Rezervasyon",
		"subtitle":   "Masanızı ayırtın",
		"submitText": "Rezervasyon Yap",
		"maxGuests":  float64(8),
	}},

	"FAQAccordion": {kind: KindFAQ, label: "Sık Sorulan Sorular", props: Props{
		"sectionTitle": "Sık Sorulan Sorular",
		"items": list(
			map[string]any{"question": "Soru 1", "answer": "Cevap 1"},
			map[string]any{"question": "Soru 2", "answer": "Cevap 2"},
		),
	}},

	"MenuShowcase": {kind: KindMenu, label: "Menü", props: Props{
		"title":    "Menü",
		"subtitle": "Lezzetlerimizi keşfedin",
		"categories": list(
			map[string]any{"name": "Ana Yemekler", "items": list(map[string]any{"name": "Yemek", "price": "", "description": ""})},
			map[string]any{"name": "Tatlılar", "items": list(map[string]any{"name": "Tatlı", "price": "", "description": ""})},
		),
	}},

	"StatsCounter": {kind: KindStats, label: "Rakamlarla Biz", props: Props{
		"sectionTitle": "Rakamlarla Biz",
		"stats": list(
			map[string]any{"value": "10+", "label": "Yıllık Deneyim"},
			map[string]any{"value": "1000+", "label": "Mutlu Müşteri"},
			map[string]any{"value": "50+", "label": "Proje"},
		),
	}},

	"GalleryGrid": {kind: KindGallery, label: "Galeri", props: Props{
		"sectionTitle": "Galeri",
		"images": list(
			map[string]any{"src": "", "alt": "Görsel 1"},
			map[string]any{"src": "", "alt": "Görsel 2"},
			map[string]any{"src": "", "alt": "Görsel 3"},
		),
	}},
	"RoomShowcase": {kind: KindGallery, label: "Oda Vitrini", props: Props{
		"sectionTitle": "Odalarımız",
		"rooms": list(
			map[string]any{"name": "Standart Oda", "description": "", "price": "", "image": ""},
			map[string]any{"name": "Suit", "description": "", "price": "", "image": ""},
		),
	}},
	"BeforeAfterGallery": {kind: KindGallery, label: "Öncesi / Sonrası", props: Props{
		"sectionTitle": "Öncesi ve Sonrası",
		"pairs": list(
			map[string]any{"before": "", "after": "", "caption": "Sonuç 1"},
			map[string]any{"before": "", "after": "", "caption": "Sonuç 2"},
		),
	}},

	"SiteFooter": {kind: KindFooter, label: "Alt Bilgi", props: Props{
		"businessName": "",
		"description":  "",
		"phone":        "",
		"email":        "",
		"address":      "",
		"copyright":    "Tüm hakları saklıdır.",
	}},

	"NewsletterSignup": {kind: KindOther, label: "Bülten", props: Props{
		"title":       "Bültenimize Katılın",
		"description": "Kampanya ve haberlerden ilk siz haberdar olun.",
		"buttonText":  "Abone Ol",
	}},
	"DentalTips": {kind: KindOther, label: "Ağız Sağlığı İpuçları", props: Props{
		"sectionTitle": "Ağız Sağlığı İpuçları",
		"tips": list(
			map[string]any{"title": "Günde iki kez fırçalayın", "description": "Sabah ve akşam en az iki dakika."},
			map[string]any{"title": "Diş ipi kullanın", "description": "Dişler arası temizliği ihmal etmeyin."},
		),
	}},
	"PropertyListings": {kind: KindOther, label: "İlanlar", props: Props{
		"sectionTitle": "Güncel İlanlar",
		"listings": list(
			map[string]any{"title": "3+1 Daire", "price": "", "location": "", "image": ""},
		),
	}},
	"ClassSchedule": {kind: KindOther, label: "Ders Programı", props: Props{
		"sectionTitle": "Ders Programı",
		"classes": list(
			map[string]any{"name": "Yoga", "day": "Pazartesi", "time": "18:00"},
			map[string]any{"name": "Pilates", "day": "Çarşamba", "time": "19:00"},
		),
	}},
}
