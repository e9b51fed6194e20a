package extract

// Phones returns digit-grouped phone numbers. Groupings overlap (a mobile
// number satisfies several of them) so earlier patterns claim their ranges
func (e *Extractor) Phones(text string) []Span {
	if text == "" {
		return nil
	}
	var out claimed

	for _, re := range e.lex.Phones {
		for _, m := range re.FindAllStringIndex(text, -1) {
			if !out.free(m[0], m[1]) {
				continue
			}
			out = append(out, Span{
				Kind: KindContact, Category: ContactPhone,
				Text: text[m[0]:m[1]], Start: m[0], End: m[1],
			})
		}
	}

	return byStart(out)
}
