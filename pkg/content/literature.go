package content

// Chapter is one excerpt from a recovery text.
type Chapter struct {
	Title   string
	Content string
}

// Work is a recovery text with a link to the full document.
type Work struct {
	ID       string
	Title    string
	PDFLink  string
	Chapters []Chapter
}

var Literature = []Work{
	{
		ID:      "aa_big_book",
		Title:   "The Big Book (Alcoholics Anonymous)",
		PDFLink: "https://www.aa.org/sites/default/files/2021-11/en_bigbook_personalstories_1st.pdf",
		Chapters: []Chapter{
			{Title: "The Doctor's Opinion", Content: "WE of Alcoholics Anonymous believe that the reader will be interested in the medical estimate of the plan of recovery described in this book..."},
			{Title: "Chapter 1: Bill's Story", Content: "WAR FEVER ran high in the New England town to which we new, young officers from Plattsburg were assigned, and we were flattered..."},
			{Title: "Chapter 5: How It Works", Content: "RARELY HAVE we seen a person fail who has thoroughly followed our path. Those who do not recover are people who cannot or will not completely give themselves to this simple program..."},
		},
	},
	{
		ID:      "na_basic_text",
		Title:   "The Basic Text (Narcotics Anonymous)",
		PDFLink: "https://www.na.org/admin/include/spaw2/uploads/pdf/litfiles/us_english/Book/Sixth%20Edition%20Basic%20Text.pdf",
		Chapters: []Chapter{
			{Title: "Who is an Addict?", Content: "Most of us do not have to think twice about this question. We know! Our whole life and thinking was centered in drugs in one form or another..."},
			{Title: "What is the Narcotics Anonymous Program?", Content: "N.A. is a nonprofit fellowship or society of men and women for whom drugs had become a major problem..."},
		},
	},
}
