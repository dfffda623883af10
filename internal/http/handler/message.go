package handler

import "newsroom/internal/core"

const oopsErr = "Oops! Something went wrong. Please try again later."

type formPage struct {
	Error bool
}

type listPage struct {
	Articles []core.ArticleRecord
	Identity core.Identity
}

type articlePage struct {
	Article core.ArticleRecord
	Error   bool
}
