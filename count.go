package tunhong

// CountModes 统计每个 Mode 的码位数量
//
// Only modes that occur in text appear in the result.
func (p *Parser) CountModes(text string) map[Mode]int {
	counts := make(map[Mode]int)
	for _, r := range text {
		counts[p.classifier.Classify(r)]++
	}
	return counts
}
