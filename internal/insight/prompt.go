package insight

// insightPromptTemplate demands exactly three numbered sections and
// forbids the model from pleading insufficient data, so thin research
// still yields an industry-level read instead of a refusal.
const insightPromptTemplate = `You are a business intelligence analyst. Create a detailed company assessment for **%s**.

**AVAILABLE RESEARCH DATA:**
%s

**REQUIRED ANALYSIS:**
Provide substantive insights in these THREE sections:

1) **Business Model & Market Position**
   - Analyze their likely business model based on available data
   - Assess their market positioning and potential differentiation
   - Identify their target customer base

2) **Growth Signals & Market Presence**
   - Evaluate any growth indicators from news or online presence
   - Assess their market traction and visibility
   - Identify potential partnership or expansion opportunities

3) **Strategic Assessment & Recommendations**
   - Provide actionable business intelligence
   - Suggest potential engagement strategies
   - Identify areas for further due diligence

**CRITICAL INSTRUCTIONS:**
- Base ALL analysis strictly on the provided research data
- If data is limited, focus on what CAN be inferred from available information
- Provide concrete, actionable business intelligence
- Never state "not enough data" - instead provide industry-level insights
- **IMPORTANT: You MUST complete all 3 sections. Do not cut off mid-sentence.**

**FORMAT REQUIREMENTS:**
- Use clear section headings with numbers (1, 2, 3)
- Keep each section concise but comprehensive
- Use bullet points for clarity
- Ensure the analysis flows logically between sections`
