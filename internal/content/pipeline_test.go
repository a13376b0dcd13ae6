package content

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"vitrin/api/internal/mapper"
	"vitrin/api/internal/project"
	"vitrin/api/internal/section"
)

func spec(typ string, required bool) section.Spec {
	p, _ := section.Defaults(typ)
	return section.Spec{Type: typ, DefaultProps: p, Required: required}
}

func dentalClinic() []section.Spec {
	return []section.Spec{
		spec("HeroDental", true),
		spec("DentalServices", false),
		spec("DentalTips", false),
		spec("DentalBooking", false),
		spec("TestimonialsGrid", false),
		spec("FAQAccordion", false),
		spec("ContactForm", true),
		spec("CTABanner", false),
	}
}

func sampleData(sectorKey string) project.Data {
	return project.Data{
		Sector:   sectorKey,
		FormData: map[string]any{"businessName": "Gülüş Kliniği", "phone": "0216 000 00 00"},
		GeneratedContent: map[string]any{
			"pages": map[string]any{
				"home": map[string]any{"hero": map[string]any{"title": "Güler Yüzlü Hizmet", "description": ""}},
				"contact": map[string]any{
					"info": map[string]any{"address": "Bağdat Cad. 1, Kadıköy"},
				},
			},
		},
	}
}

func TestClosedSectorGateStillRewritesLabels(t *testing.T) {
	mappers := mapper.NewRegistry()
	mappers.Register([]string{"PromoStrip"}, func(section.Props, mapper.Input) section.Props {
		return section.Props{"badge": "Günün Kahvesi", "sectionTitle": "Kahve Menüsü"}
	}, "cafe")
	p := NewPipeline(mappers, nil)
	specs := []section.Spec{{Type: "PromoStrip", DefaultProps: section.Props{"sectionTitle": "Our Menu", "badge": "Yeni"}}}

	out := p.MapSections(specs, project.Data{Sector: "otel"})
	if len(out) != 1 {
		t.Fatalf("got %d specs", len(out))
	}
	if out[0].DefaultProps["badge"] != "Yeni" {
		t.Fatalf("mapper ran behind a closed gate: %v", out[0].DefaultProps)
	}
	if out[0].DefaultProps["sectionTitle"] != "Odalarımız" {
		t.Fatalf("sectionTitle = %v, want Odalarımız", out[0].DefaultProps["sectionTitle"])
	}

	out = p.MapSections(specs, project.Data{Sector: "cafe"})
	if out[0].DefaultProps["badge"] != "Günün Kahvesi" {
		t.Fatalf("mapper skipped for an allowed sector: %v", out[0].DefaultProps)
	}
	if specs[0].DefaultProps["sectionTitle"] != "Our Menu" || specs[0].DefaultProps["badge"] != "Yeni" {
		t.Fatalf("input specs were modified: %v", specs[0].DefaultProps)
	}
}

func TestMapSectionsDentalForCafe(t *testing.T) {
	out := DefaultPipeline().MapSections(dentalClinic(), sampleData("cafe"))

	var got []string
	for _, s := range out {
		got = append(got, s.Type)
	}
	want := []string{"HeroCentered", "ServicesGrid", "AppointmentBooking", "TestimonialsGrid", "FAQAccordion", "ContactForm", "CTABanner"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("types = %v, want %v", got, want)
	}
	if !out[0].Required || !out[5].Required {
		t.Fatalf("required flags lost: %#v", out)
	}
	hero := out[0].DefaultProps
	if hero["title"] != "Güler Yüzlü Hizmet" || hero["description"] != "Sıcak bir ortamda taze kahve ve ev yapımı tatlıların tadını çıkarın." {
		t.Fatalf("hero = %#v", hero)
	}
	if out[1].DefaultProps["sectionTitle"] != "Menümüz" {
		t.Fatalf("services title = %v", out[1].DefaultProps["sectionTitle"])
	}
	if out[5].DefaultProps["address"] != "Bağdat Cad. 1, Kadıköy" {
		t.Fatalf("contact address = %v", out[5].DefaultProps["address"])
	}
	if out[6].DefaultProps["title"] != "Gülüş Kliniği ile Tanışın" {
		t.Fatalf("cta title = %v", out[6].DefaultProps["title"])
	}
}

func TestMapSectionsUnknownSectorKeepsTemplateDefaults(t *testing.T) {
	specs := []section.Spec{spec("AboutSplit", false), spec("CTABanner", false)}
	out := DefaultPipeline().MapSections(specs, project.Data{Sector: "oto yıkama"})
	if !reflect.DeepEqual(out[0].DefaultProps, specs[0].DefaultProps) {
		t.Fatalf("about changed without profile or content: %#v", out[0].DefaultProps)
	}
	if !reflect.DeepEqual(out[1].DefaultProps, specs[1].DefaultProps) {
		t.Fatalf("cta changed without business name: %#v", out[1].DefaultProps)
	}
}

func TestMapSectionsNilPropsBecomeEmpty(t *testing.T) {
	out := DefaultPipeline().MapSections([]section.Spec{{Type: "Carousel3D"}}, project.Data{})
	if out[0].DefaultProps == nil {
		t.Fatalf("expected non-nil props")
	}
}

func TestRewriteLabels(t *testing.T) {
	hotel := mapper.NewInput(project.Data{Sector: "otel"})
	cases := []struct {
		name  string
		in    section.Props
		input mapper.Input
		want  section.Props
	}{
		{
			name:  "menu placeholder becomes services term",
			in:    section.Props{"sectionTitle": "Our Menu", "title": "Hoş geldiniz"},
			input: hotel,
			want:  section.Props{"sectionTitle": "Odalarımız", "title": "Hoş geldiniz"},
		},
		{
			name:  "team placeholder",
			in:    section.Props{"title": "Ekip Üyelerimiz"},
			input: mapper.NewInput(project.Data{Sector: "lawyer"}),
			want:  section.Props{"title": "Avukatlarımız"},
		},
		{
			name:  "no profile is a no-op",
			in:    section.Props{"sectionTitle": "Menü"},
			input: mapper.NewInput(project.Data{Sector: "oto yikama"}),
			want:  section.Props{"sectionTitle": "Menü"},
		},
		{
			name:  "non-label fields ignored",
			in:    section.Props{"description": "Menü"},
			input: hotel,
			want:  section.Props{"description": "Menü"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.in.Clone()
			got := RewriteLabels(tc.in, tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
			if !reflect.DeepEqual(tc.in, before) {
				t.Fatalf("input mutated")
			}
		})
	}
}

func TestPipelineProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	pipeline := DefaultPipeline()
	reg := section.DefaultRegistry()
	allTypes := reg.Types()
	sectors := []string{"", "cafe", "Diş Hekimi", "otel", "avukat", "fitness", "bilinmeyen"}

	build := func(idx []int) []section.Spec {
		specs := make([]section.Spec, 0, len(idx))
		for i, n := range idx {
			specs = append(specs, spec(allTypes[n], i%2 == 0))
		}
		return specs
	}

	properties.Property("mapping is idempotent and leaves input untouched", prop.ForAll(
		func(idx []int, sectorIdx int, name string) bool {
			specs := build(idx)
			before := section.CloneSpecs(specs)
			data := sampleData(sectors[sectorIdx])
			data.FormData["businessName"] = name

			first := pipeline.MapSections(specs, data)
			second := pipeline.MapSections(specs, data)
			return reflect.DeepEqual(first, second) && reflect.DeepEqual(specs, before)
		},
		gen.SliceOf(gen.IntRange(0, len(allTypes)-1)),
		gen.IntRange(0, len(sectors)-1),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
