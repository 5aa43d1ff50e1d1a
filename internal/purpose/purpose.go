// Package purpose maps a search keyword to the summarization goal used to
// condition the LLM prompts.
package purpose

import (
	"fmt"
	"strings"
)

type mapping struct {
	match   string
	purpose string
}

// Scanned in order; the first entry whose match is a substring of the
// keyword wins, so 비트코인 resolves before any later table growth could
// shadow it.
var purposeTable = []mapping{
	{"코인", "가상자산 뉴스 요약"},
	{"비트코인", "가상자산 뉴스 요약"},
	{"이더리움", "가상자산 뉴스 요약"},
	{"주식", "주식 시장 트렌드 요약"},
	{"ETF", "금융 투자 요약"},
	{"테슬라", "글로벌 기업 뉴스 요약"},
	{"애플", "IT 기업 트렌드 요약"},
	{"취업", "취업 시장 동향 요약"},
	{"부동산", "부동산 뉴스 요약"},
	{"아파트", "주택 시장 뉴스 요약"},
	{"AI", "인공지능 트렌드 요약"},
	{"챗GPT", "최신 AI 뉴스 요약"},
	{"메타버스", "신기술 트렌드 요약"},
}

// Classify returns the purpose for the first table entry contained in the
// keyword, or a generic purpose embedding the keyword itself.
func Classify(keyword string) string {
	for _, m := range purposeTable {
		if strings.Contains(keyword, m.match) {
			return m.purpose
		}
	}
	return fmt.Sprintf("%s 관련 뉴스 요약", keyword)
}
