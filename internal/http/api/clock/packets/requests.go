package packets

// PhraseQuery carries an explicit wall-clock reading. Pointer fields so
// binding:"required" still accepts the zero hour/minute; the range tags are
// the documented domain boundary, the formatter itself never validates.
type PhraseQuery struct {
	Hour   *int `form:"hour" binding:"required,min=0,max=23"`
	Minute *int `form:"minute" binding:"required,min=0,max=59"`
}

type NowQuery struct {
	Timezone string `form:"timezone"`
}
