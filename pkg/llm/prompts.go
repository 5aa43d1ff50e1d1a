package llm

// Per-article prompt: conditions the model on the summarization purpose so
// a 코인 keyword gets a crypto-flavored summary and so on.
const summaryPrompt = `너는 한국어 뉴스 기사를 요약하는 AI야.
요약 목적: %s
뉴스 기사 원문: %s`

// Trend prompt: runs over already-condensed summaries, never raw page text,
// so its input stays bounded.
const trendPrompt = `다음은 기사 요약들입니다.
'%s'에 대한 최신 트렌드를 3~5줄로 설명해줘.
요약들:
%s`
