package sector

var profiles = map[string]Profile{
	"restaurant": {
		Key:             "restaurant",
		HeroTitle:       "Unutulmaz Lezzetler",
		HeroSubtitle:    "Geleneksel tarifler, modern sunumlar",
		HeroDescription: "Mevsimin en taze malzemeleriyle hazırlanan yemeklerimizi keşfedin.",
		CTAText:         "Rezervasyon Yap",
		Services: []Service{
			{Title: "Akşam Yemeği", Description: "Şefimizin özel tadım menüsü"},
			{Title: "Özel Davetler", Description: "Doğum günü ve kutlamalar için kapalı salon"},
			{Title: "Paket Servis", Description: "Sevdiğiniz lezzetler kapınıza gelsin"},
		},
		AboutTitle:       "Hikayemiz",
		AboutDescription: "Yıllardır aynı tutku ve özenle misafirlerimizi ağırlıyoruz.",
		Vocabulary:       Vocabulary{Services: "Menümüz", Team: "Şeflerimiz", Gallery: "Lezzet Galerisi", Appointment: "Rezervasyon"},
	},
	"cafe": {
		Key:             "cafe",
		HeroTitle:       "Güne Güzel Bir Kahveyle Başlayın",
		HeroSubtitle:    "Özenle kavrulmuş çekirdekler",
		HeroDescription: "Sıcak bir ortamda taze kahve ve ev yapımı tatlıların tadını çıkarın.",
		CTAText:         "Bizi Ziyaret Edin",
		Services: []Service{
			{Title: "Özel Kahveler", Description: "Filtre, espresso ve demleme çeşitleri"},
			{Title: "Ev Yapımı Tatlılar", Description: "Her sabah taze pişen kekler"},
			{Title: "Kahvaltı", Description: "Hafta sonu serpme kahvaltı"},
		},
		AboutTitle:       "Kahve Tutkumuz",
		AboutDescription: "Küçük bir tezgahta başlayan hikayemiz bugün mahallenin buluşma noktası.",
		Vocabulary:       Vocabulary{Services: "Menümüz", Team: "Baristalarımız", Gallery: "Kafemizden Kareler", Appointment: "Rezervasyon"},
	},
	"dentist": {
		Key:             "dentist",
		HeroTitle:       "Sağlıklı Gülüşler İçin",
		HeroSubtitle:    "Modern ve ağrısız diş tedavisi",
		HeroDescription: "Deneyimli hekim kadromuzla tüm ailenize güvenilir ağız ve diş sağlığı hizmeti sunuyoruz.",
		CTAText:         "Randevu Al",
		Services: []Service{
			{Title: "İmplant", Description: "Eksik dişler için kalıcı çözüm"},
			{Title: "Diş Beyazlatma", Description: "Tek seansta daha parlak gülüşler"},
			{Title: "Ortodonti", Description: "Şeffaf plak ve braket tedavileri"},
		},
		AboutTitle:       "Kliniğimiz Hakkında",
		AboutDescription: "Steril ortamımız ve güncel teknolojimizle konforunuzu önceliklendiriyoruz.",
		Vocabulary:       Vocabulary{Services: "Tedavilerimiz", Team: "Hekimlerimiz", Gallery: "Kliniğimiz", Appointment: "Randevu"},
	},
	"hotel": {
		Key:             "hotel",
		HeroTitle:       "Huzurlu Bir Konaklama",
		HeroSubtitle:    "Şehrin kalbinde butik otel deneyimi",
		HeroDescription: "Konforlu odalarımız ve samimi hizmetimizle kendinizi evinizde hissedin.",
		CTAText:         "Oda Ayırt",
		Services: []Service{
			{Title: "Standart Oda", Description: "Şehir manzaralı, iki kişilik"},
			{Title: "Suit", Description: "Oturma alanlı geniş süit"},
			{Title: "Kahvaltı Dahil", Description: "Açık büfe kahvaltı"},
		},
		AboutTitle:       "Otelimiz",
		AboutDescription: "Tarihi bir binada, modern konforla misafirlerimizi ağırlıyoruz.",
		Vocabulary:       Vocabulary{Services: "Odalarımız", Team: "Ekibimiz", Gallery: "Otelimizden Kareler", Appointment: "Rezervasyon"},
	},
	"lawyer": {
		Key:             "lawyer",
		HeroTitle:       "Haklarınız Güvende",
		HeroSubtitle:    "Deneyimli hukuki danışmanlık",
		HeroDescription: "Bireysel ve kurumsal müvekkillerimize şeffaf ve etkin hukuki destek sağlıyoruz.",
		CTAText:         "Danışmanlık Alın",
		Services: []Service{
			{Title: "Ticaret Hukuku", Description: "Şirket kuruluşu ve sözleşmeler"},
			{Title: "Aile Hukuku", Description: "Boşanma, velayet ve nafaka davaları"},
			{Title: "İş Hukuku", Description: "İşçi ve işveren uyuşmazlıkları"},
		},
		AboutTitle:       "Büromuz",
		AboutDescription: "Her dosyayı titizlikle takip eden uzman bir avukat kadrosuyla çalışıyoruz.",
		Vocabulary:       Vocabulary{Services: "Çalışma Alanlarımız", Team: "Avukatlarımız", Gallery: "Büromuz", Appointment: "Görüşme"},
	},
	"beauty_salon": {
		Key:             "beauty_salon",
		HeroTitle:       "Kendinize Zaman Ayırın",
		HeroSubtitle:    "Saç, cilt ve bakım uzmanlığı",
		HeroDescription: "Uzman ekibimizle size özel bakım ritüelleri hazırlıyoruz.",
		CTAText:         "Randevu Al",
		Services: []Service{
			{Title: "Saç Tasarımı", Description: "Kesim, boya ve bakım"},
			{Title: "Cilt Bakımı", Description: "Kişiye özel yüz bakımları"},
			{Title: "Manikür & Pedikür", Description: "Hijyenik ve özenli bakım"},
		},
		AboutTitle:       "Salonumuz",
		AboutDescription: "Güzelliğinizi ön plana çıkaran, rahatlatıcı bir ortam sunuyoruz.",
		Vocabulary:       Vocabulary{Services: "Bakımlarımız", Team: "Uzmanlarımız", Gallery: "Salonumuzdan Kareler", Appointment: "Randevu"},
	},
	"fitness": {
		Key:             "fitness",
		HeroTitle:       "Sınırlarını Zorla",
		HeroSubtitle:    "Profesyonel antrenörlerle hedefine ulaş",
		HeroDescription: "Modern ekipmanlar ve grup dersleriyle formda kalmak artık daha kolay.",
		CTAText:         "Ücretsiz Deneme",
		Services: []Service{
			{Title: "Kişisel Antrenman", Description: "Birebir programlar"},
			{Title: "Grup Dersleri", Description: "Pilates, yoga ve HIIT"},
			{Title: "Beslenme Danışmanlığı", Description: "Hedefe uygun diyet planı"},
		},
		AboutTitle:       "Salonumuz",
		AboutDescription: "Her seviyeden sporcuya uygun, motive edici bir ortam.",
		Vocabulary:       Vocabulary{Services: "Programlarımız", Team: "Antrenörlerimiz", Gallery: "Salonumuz", Appointment: "Deneme Dersi"},
	},
	"clinic": {
		Key:             "clinic",
		HeroTitle:       "Sağlığınız İçin Yanınızdayız",
		HeroSubtitle:    "Uzman hekimler, güvenilir tanı",
		HeroDescription: "Poliklinik hizmetlerimizle tüm ailenizin sağlığını takip ediyoruz.",
		CTAText:         "Randevu Al",
		Services: []Service{
			{Title: "Dahiliye", Description: "Genel sağlık kontrolleri"},
			{Title: "Check-up", Description: "Kapsamlı tarama paketleri"},
			{Title: "Laboratuvar", Description: "Hızlı tahlil sonuçları"},
		},
		AboutTitle:       "Kliniğimiz",
		AboutDescription: "Hasta odaklı yaklaşımımızla kaliteli sağlık hizmeti sunuyoruz.",
		Vocabulary:       Vocabulary{Services: "Bölümlerimiz", Team: "Hekimlerimiz", Gallery: "Kliniğimiz", Appointment: "Randevu"},
	},
	"veterinary": {
		Key:             "veterinary",
		HeroTitle:       "Can Dostlarınız Emin Ellerde",
		HeroSubtitle:    "Sevgiyle veteriner hekimlik",
		HeroDescription: "Aşıdan cerrahiye evcil hayvanlarınız için eksiksiz bakım.",
		CTAText:         "Randevu Al",
		Services: []Service{
			{Title: "Aşı Takibi", Description: "Düzenli koruyucu aşılar"},
			{Title: "Cerrahi", Description: "Kısırlaştırma ve operasyonlar"},
			{Title: "Pet Kuaför", Description: "Tıraş ve bakım"},
		},
		AboutTitle:       "Kliniğimiz",
		AboutDescription: "Hayvan sevgisiyle kurulmuş, tam donanımlı bir klinik.",
		Vocabulary:       Vocabulary{Services: "Hizmetlerimiz", Team: "Veteriner Hekimlerimiz", Gallery: "Kliniğimiz", Appointment: "Randevu"},
	},
	"real_estate": {
		Key:             "real_estate",
		HeroTitle:       "Hayalinizdeki Evi Bulun",
		HeroSubtitle:    "Güvenilir emlak danışmanlığı",
		HeroDescription: "Satılık ve kiralık portföyümüzle doğru yatırımı birlikte yapalım.",
		CTAText:         "Portföyü İncele",
		Services: []Service{
			{Title: "Satılık Konut", Description: "Geniş portföy"},
			{Title: "Kiralık Konut", Description: "Hızlı ve güvenli kiralama"},
			{Title: "Değerleme", Description: "Ücretsiz ekspertiz desteği"},
		},
		AboutTitle:       "Ofisimiz",
		AboutDescription: "Bölgeyi en iyi tanıyan danışmanlarla hizmetinizdeyiz.",
		Vocabulary:       Vocabulary{Services: "Hizmetlerimiz", Team: "Danışmanlarımız", Gallery: "Portföyümüz", Appointment: "Görüşme"},
	},
	"photography": {
		Key:             "photography",
		HeroTitle:       "Anları Sanata Dönüştürüyoruz",
		HeroSubtitle:    "Düğün, portre ve ürün fotoğrafçılığı",
		HeroDescription: "Her kareye hikayenizi katan profesyonel çekimler.",
		CTAText:         "Çekim Planla",
		Services: []Service{
			{Title: "Düğün Çekimi", Description: "Hazırlıktan kapanışa"},
			{Title: "Portre", Description: "Stüdyo ve dış çekim"},
			{Title: "Ürün Fotoğrafı", Description: "E-ticaret için temiz kareler"},
		},
		AboutTitle:       "Ben Kimim",
		AboutDescription: "On yılı aşkın süredir ışığın peşinde bir fotoğrafçı.",
		Vocabulary:       Vocabulary{Services: "Paketlerim", Team: "Ekibimiz", Gallery: "Portfolyo", Appointment: "Çekim"},
	},
}

var aliases = map[string]string{
	"dental":       "dentist",
	"dis":          "dentist",
	"dis_hekimi":   "dentist",
	"dishekimi":    "dentist",
	"fine_dining":  "restaurant",
	"restoran":     "restaurant",
	"lokanta":      "restaurant",
	"kafe":         "cafe",
	"coffee":       "cafe",
	"kahve":        "cafe",
	"otel":         "hotel",
	"pansiyon":     "hotel",
	"hukuk":        "lawyer",
	"avukat":       "lawyer",
	"law_firm":     "lawyer",
	"kuafor":       "beauty_salon",
	"guzellik":     "beauty_salon",
	"spa":          "beauty_salon",
	"beauty":       "beauty_salon",
	"gym":          "fitness",
	"spor":         "fitness",
	"klinik":       "clinic",
	"doktor":       "clinic",
	"poliklinik":   "clinic",
	"veteriner":    "veterinary",
	"vet":          "veterinary",
	"emlak":        "real_estate",
	"realty":       "real_estate",
	"fotograf":     "photography",
	"photographer": "photography",
}
