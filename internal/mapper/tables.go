package mapper

import (
	"sort"
	"strings"
)

type roleLabel struct {
	Title string
	Role  string
}

var testimonialLabels = map[string]roleLabel{
	"restaurant":   {Title: "Misafirlerimiz Ne Diyor?", Role: "Misafir"},
	"cafe":         {Title: "Müdavimlerimiz Ne Diyor?", Role: "Müdavim"},
	"dentist":      {Title: "Hastalarımız Ne Diyor?", Role: "Hasta"},
	"clinic":       {Title: "Hastalarımız Ne Diyor?", Role: "Hasta"},
	"hotel":        {Title: "Konuklarımızın Yorumları", Role: "Konuk"},
	"lawyer":       {Title: "Müvekkillerimiz Ne Diyor?", Role: "Müvekkil"},
	"beauty_salon": {Title: "Müşterilerimiz Ne Diyor?", Role: "Müşteri"},
	"fitness":      {Title: "Üyelerimiz Ne Diyor?", Role: "Üye"},
	"veterinary":   {Title: "Can Dostlarımızın Aileleri Ne Diyor?", Role: "Evcil Hayvan Sahibi"},
	"real_estate":  {Title: "Müşterilerimiz Ne Diyor?", Role: "Ev Sahibi"},
	"photography":  {Title: "Çiftlerimiz Ne Diyor?", Role: "Müşteri"},
}

var appointmentSubtitles = map[string]string{
	"restaurant":   "Masanızı önceden ayırtın, sizi bekleyelim",
	"cafe":         "Grup buluşmalarınız için yer ayırtın",
	"dentist":      "Muayene için size uygun saati seçin",
	"clinic":       "Uzman hekimlerimizden randevu alın",
	"hotel":        "Giriş ve çıkış tarihlerinizi seçin",
	"lawyer":       "Ön görüşme için uygun zamanı belirleyin",
	"beauty_salon": "Bakım randevunuzu kolayca oluşturun",
	"fitness":      "Ücretsiz deneme dersiniz için saat seçin",
	"veterinary":   "Can dostunuzun muayenesi için randevu alın",
	"real_estate":  "Portföy gezisi için zaman planlayın",
	"photography":  "Çekim tarihinizi şimdiden ayırtın",
}

type faqEntry struct {
	Question string
	Answer   string
}

var defaultFAQ = []faqEntry{
	{Question: "Çalışma saatleriniz nedir?", Answer: "Hafta içi 09:00 - 18:00, cumartesi 10:00 - 16:00 arası hizmet veriyoruz."},
	{Question: "Nasıl iletişime geçebilirim?", Answer: "İletişim formunu doldurabilir ya da bizi telefonla arayabilirsiniz."},
	{Question: "Ödeme seçenekleriniz nelerdir?", Answer: "Nakit, kredi kartı ve havale ile ödeme kabul ediyoruz."},
	{Question: "Randevu gerekli mi?", Answer: "Yoğun saatlerde beklememek için önceden randevu almanızı öneririz."},
}

var faqSets = map[string][]faqEntry{
	"restaurant": {
		{Question: "Rezervasyon gerekli mi?", Answer: "Hafta sonları için rezervasyon yapmanızı öneririz."},
		{Question: "Vejetaryen seçenekleriniz var mı?", Answer: "Menümüzde her gün vejetaryen ve vegan seçenekler bulunur."},
		{Question: "Özel davet düzenliyor musunuz?", Answer: "Kapalı salonumuzda 40 kişiye kadar özel davet düzenliyoruz."},
	},
	"cafe": {
		{Question: "Bitki bazlı süt var mı?", Answer: "Yulaf, badem ve soya sütü seçeneklerimiz mevcut."},
		{Question: "Çalışmak için uygun musunuz?", Answer: "Ücretsiz Wi-Fi ve prizli masalarımız var."},
		{Question: "Çekirdek kahve satıyor musunuz?", Answer: "Kavurduğumuz çekirdekleri 250 gramlık paketlerde satıyoruz."},
	},
	"dentist": {
		{Question: "İlk muayene ücretli mi?", Answer: "İlk muayene ve panoramik röntgen ücretsizdir."},
		{Question: "İmplant tedavisi ne kadar sürer?", Answer: "Kemik durumuna göre ortalama 3 ile 6 ay arasında tamamlanır."},
		{Question: "Çocuklara hizmet veriyor musunuz?", Answer: "Pedodonti uzmanımız çocuk hastalarımızla ilgilenir."},
		{Question: "Anlaşmalı sigortalarınız hangileri?", Answer: "Başlıca özel sağlık sigortalarıyla anlaşmamız bulunuyor."},
	},
	"hotel": {
		{Question: "Giriş ve çıkış saatleri nedir?", Answer: "Giriş 14:00'ten sonra, çıkış 12:00'ye kadardır."},
		{Question: "Otopark var mı?", Answer: "Misafirlerimize ücretsiz kapalı otopark sunuyoruz."},
		{Question: "Evcil hayvan kabul ediyor musunuz?", Answer: "Küçük ırk evcil hayvanları belirli odalarda kabul ediyoruz."},
	},
	"lawyer": {
		{Question: "İlk görüşme ücretli mi?", Answer: "İlk değerlendirme görüşmesi için ücret alınmaz."},
		{Question: "Hangi şehirlerde dava takip ediyorsunuz?", Answer: "Türkiye genelinde dava takibi yapıyoruz."},
		{Question: "Vekalet ücreti nasıl belirlenir?", Answer: "Baro asgari ücret tarifesi ve dosyanın niteliğine göre belirlenir."},
	},
	"beauty_salon": {
		{Question: "Hangi ürünleri kullanıyorsunuz?", Answer: "Dermatolojik olarak test edilmiş profesyonel ürünler kullanıyoruz."},
		{Question: "Gelin paketiniz var mı?", Answer: "Saç, makyaj ve cilt bakımını içeren gelin paketlerimiz mevcut."},
		{Question: "Randevu iptali nasıl yapılır?", Answer: "Randevunuzdan 24 saat önce haber vermeniz yeterlidir."},
	},
	"fitness": {
		{Question: "Deneme dersi var mı?", Answer: "İlk grup dersiniz ücretsizdir."},
		{Question: "Üyelik dondurulabilir mi?", Answer: "Yıllık üyeliklerde 30 güne kadar dondurma hakkınız var."},
		{Question: "Kişisel antrenör ücretli mi?", Answer: "Kişisel antrenman paketleri üyelikten ayrı ücretlendirilir."},
	},
}

type menuText struct {
	Title    string
	Subtitle string
}

var menuCopy = map[string]menuText{
	"restaurant": {Title: "Menümüz", Subtitle: "Şefimizin özenle hazırladığı lezzetler"},
	"cafe":       {Title: "Menümüz", Subtitle: "Taze kahveler ve ev yapımı tatlılar"},
	"bakery":     {Title: "Ürünlerimiz", Subtitle: "Her sabah taze çıkan ekmek ve pastalar"},
	"hotel":      {Title: "Restoranımız", Subtitle: "Otelimizin mutfağından seçkiler"},
}

type stat struct {
	Value string
	Label string
}

var statSets = map[string][]stat{
	"restaurant": {{"15+", "Yıllık Tecrübe"}, {"120", "Menüdeki Lezzet"}, {"50.000+", "Mutlu Misafir"}},
	"cafe":       {{"12", "Kahve Çeşidi"}, {"300+", "Günlük Fincan"}, {"8", "Yıllık Tecrübe"}},
	"dentist":    {{"15+", "Yıllık Deneyim"}, {"10.000+", "Mutlu Hasta"}, {"6", "Uzman Hekim"}},
	"clinic":     {{"20+", "Uzman Hekim"}, {"12", "Poliklinik"}, {"100.000+", "Hasta"}},
	"hotel":      {{"48", "Oda"}, {"4.8", "Misafir Puanı"}, {"25", "Yıllık Misafirperverlik"}},
	"lawyer":     {{"500+", "Sonuçlanan Dava"}, {"20", "Yıllık Tecrübe"}, {"%95", "Müvekkil Memnuniyeti"}},
	"fitness":    {{"1.200+", "Aktif Üye"}, {"30", "Haftalık Ders"}, {"10", "Antrenör"}},
}

// faqSetFor picks the exact sector set, then a set whose key the sector
// contains, then the default set.
func faqSetFor(sectorKey string) []faqEntry {
	if set, ok := lookupBySector(faqSets, sectorKey); ok {
		return set
	}
	return defaultFAQ
}

func faqItems(set []faqEntry) []any {
	out := make([]any, len(set))
	for i, e := range set {
		out[i] = map[string]any{"question": e.Question, "answer": e.Answer}
	}
	return out
}

func lookupBySector[V any](table map[string]V, sectorKey string) (V, bool) {
	var zero V
	if sectorKey == "" {
		return zero, false
	}
	if v, ok := table[sectorKey]; ok {
		return v, true
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		if strings.Contains(sectorKey, k) {
			return table[k], true
		}
	}
	return zero, false
}
