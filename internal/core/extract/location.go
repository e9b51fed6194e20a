package extract

import "strings"

// Locations returns venue candidates in priority order of specificity:
// building qualifiers, named facilities, prefixed general venues, connector
// phrases, mall names, and capitalized/gazetteer foreign names. Higher
// priority matches claim their byte ranges first
func (e *Extractor) Locations(text string) []Span {
	if text == "" {
		return nil
	}
	var out claimed

	// building/floor/department qualifiers; kept out of the general pool so
	// the same phrase cannot surface as both venue and qualifier
	for _, re := range e.reBuilding {
		for _, m := range re.FindAllStringIndex(text, -1) {
			if !out.free(m[0], m[1]) {
				continue
			}
			matched := cutAtMarker(text[m[0]:m[1]])
			if len([]rune(matched)) < 3 {
				continue
			}
			out = append(out, Span{
				Kind: KindLocation, Category: LocBuilding,
				Text: matched, Start: m[0], End: m[0] + len(matched),
			})
		}
	}

	// named facilities: airports are specific, hospitals and clinics medical
	for i, re := range e.reSpecific {
		cat := LocSpecific
		if i > 0 {
			cat = LocHospital
		}
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			if !out.free(m[0], m[1]) {
				continue
			}
			name := cutAtMarker(text[m[2]:m[3]])
			if name == "" {
				continue
			}
			facility := strings.TrimPrefix(text[m[0]:m[2]], "ที่")
			out = append(out, Span{
				Kind: KindLocation, Category: cat,
				Text: facility + name, Start: m[0], End: m[2] + len(name),
			})
		}
	}

	// ที่ + general venue word run (ที่ร้านกาแฟ ที่ห้างเซ็นทรัล)
	for _, m := range e.reGeneralPrefixed.FindAllStringIndex(text, -1) {
		if !out.free(m[0], m[1]) {
			continue
		}
		matched := cutAtMarker(text[m[0]:m[1]])
		if len([]rune(matched)) < 4 {
			continue
		}
		out = append(out, Span{
			Kind: KindLocation, Category: LocGeneral,
			Text: matched, Start: m[0], End: m[0] + len(matched),
		})
	}

	// bare connector + token (ที่ สยาม / ณ หอประชุม / ไป ตลาด)
	for _, m := range e.reConnector.FindAllStringSubmatchIndex(text, -1) {
		if !out.free(m[0], m[1]) {
			continue
		}
		tok := cutAtMarker(text[m[2]:m[3]])
		if len([]rune(tok)) < 2 {
			continue
		}
		out = append(out, Span{
			Kind: KindLocation, Category: LocGeneral,
			Text: tok, Start: m[0], End: m[2] + len(tok),
		})
	}

	// mall keywords without a connector (เซ็นทรัลลาดพร้าว)
	for _, re := range e.reMall {
		for _, m := range re.FindAllStringIndex(text, -1) {
			if !out.free(m[0], m[1]) {
				continue
			}
			matched := text[m[0]:m[1]]
			if len([]rune(matched)) < 3 {
				continue
			}
			out = append(out, Span{
				Kind: KindLocation, Category: LocVenue,
				Text: matched, Start: m[0], End: m[1],
			})
		}
	}

	// at/in + Capitalized phrase
	for _, m := range e.reEnglishConn.FindAllStringSubmatchIndex(text, -1) {
		if !out.free(m[0], m[1]) {
			continue
		}
		phrase := text[m[2]:m[3]]
		if len(phrase) < 3 {
			continue
		}
		out = append(out, Span{
			Kind: KindLocation, Category: LocVenue,
			Text: phrase, Start: m[0], End: m[1],
		})
	}

	// gazetteer of well-known venue names
	for _, m := range e.reVenue.FindAllStringIndex(text, -1) {
		if !out.free(m[0], m[1]) {
			continue
		}
		out = append(out, Span{
			Kind: KindLocation, Category: LocVenue,
			Text: text[m[0]:m[1]], Start: m[0], End: m[1],
		})
	}

	return byStart(out)
}

// cutAtMarker trims a greedy venue run at the first contact marker so phrases
// like ที่ร้านกับแม่ do not swallow the companion
func cutAtMarker(s string) string {
	if i := strings.Index(s, "กับ"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
