package botanical

// first declension: agricola, lorica
var aEndings = CaseEndings{
	Name:   "a",
	Gender: Feminine,

	NomSg: "a",
	AccSg: "am",
	GenSg: "ae",
	DatSg: "ae",
	AblSg: "a",

	NomPl: "ae",
	AccPl: "as",
	GenPl: "arum",
	DatPl: "is",
	AblPl: "is",
}

// second declension masculine: hibiscus
var usEndings = CaseEndings{
	Name:   "us",
	Gender: Masculine,

	NomSg: "us",
	AccSg: "um",
	GenSg: "i",
	DatSg: "o",
	AblSg: "o",

	NomPl: "i",
	AccPl: "os",
	GenPl: "orum",
	DatPl: "is",
	AblPl: "is",
}

var oEndings = CaseEndings{
	Name:   "o",
	Gender: Masculine,

	NomSg: "o",
	AccSg: "onem",
	GenSg: "onis",
	DatSg: "oni",
	AblSg: "one",

	NomPl: "ones",
	AccPl: "ones",
	GenPl: "onum",
	DatPl: "onibus",
	AblPl: "onibus",
}

var onEndings = CaseEndings{
	Name:   "on",
	Gender: Masculine,

	NomSg: "on",
	AccSg: "ontem",
	GenSg: "ontis",
	DatSg: "onti",
	AblSg: "onte",

	NomPl: "ontes",
	AccPl: "ontes",
	GenPl: "ontum",
	DatPl: "ontibus",
	AblPl: "ontibus",
}

// caput, capitis
var utEndings = CaseEndings{
	Name:   "ut",
	Gender: Neuter,

	NomSg: "ut",
	AccSg: "ut",
	GenSg: "itis",
	DatSg: "iti",
	AblSg: "ite",

	NomPl: "ita",
	AccPl: "ita",
	GenPl: "itum",
	DatPl: "itibus",
	AblPl: "itibus",
}

var orEndings = CaseEndings{
	Name:   "or",
	Gender: Masculine,

	NomSg: "or",
	AccSg: "orem",
	GenSg: "oris",
	DatSg: "ori",
	AblSg: "ore",

	NomPl: "ores",
	AccPl: "ores",
	GenPl: "orum",
	DatPl: "oribus",
	AblPl: "oribus",
}

// flos, floris
var osEndings = CaseEndings{
	Name:   "os",
	Gender: Masculine,

	NomSg: "os",
	AccSg: "orem",
	GenSg: "oris",
	DatSg: "ori",
	AblSg: "ore",

	NomPl: "ores",
	AccPl: "ores",
	GenPl: "orum",
	DatPl: "oribus",
	AblPl: "oribus",
}

var umEndings = CaseEndings{
	Name:   "um",
	Gender: Neuter,

	NomSg: "um",
	AccSg: "um",
	GenSg: "i",
	DatSg: "o",
	AblSg: "o",

	NomPl: "a",
	AccPl: "a",
	GenPl: "orum",
	DatPl: "is",
	AblPl: "is",
}

var uEndings = CaseEndings{
	Name:   "u",
	Gender: Neuter,

	NomSg: "u",
	AccSg: "u",
	GenSg: "us",
	DatSg: "ui",
	AblSg: "u",

	NomPl: "ua",
	AccPl: "ua",
	GenPl: "uum",
	DatPl: "uibus",
	AblPl: "uibus",
}

var erEndings = CaseEndings{
	Name:   "er",
	Gender: Masculine,

	NomSg: "er",
	AccSg: "er",
	GenSg: "eris",
	DatSg: "eri",
	AblSg: "ere",

	NomPl: "era",
	AccPl: "era",
	GenPl: "erum",
	DatPl: "eribus",
	AblPl: "eribus",
}

var alEndings = CaseEndings{
	Name:   "al",
	Gender: Neuter,

	NomSg: "al",
	AccSg: "al",
	GenSg: "alis",
	DatSg: "ali",
	AblSg: "ali",

	NomPl: "alia",
	AccPl: "alia",
	GenPl: "alium",
	DatPl: "alibus",
	AblPl: "alibus",
}

var arEndings = CaseEndings{
	Name:   "ar",
	Gender: Neuter,

	NomSg: "ar",
	AccSg: "ar",
	GenSg: "aris",
	DatSg: "ari",
	AblSg: "ari",

	NomPl: "aria",
	AccPl: "aria",
	GenPl: "arium",
	DatPl: "aribus",
	AblPl: "aribus",
}

var asEndings = CaseEndings{
	Name:   "as",
	Gender: Feminine,

	NomSg: "as",
	AccSg: "atem",
	GenSg: "atis",
	DatSg: "ati",
	AblSg: "ate",

	NomPl: "ates",
	AccPl: "ates",
	GenPl: "atum",
	DatPl: "atibus",
	AblPl: "atibus",
}

var axEndings = CaseEndings{
	Name:   "ax",
	Gender: Feminine,

	NomSg: "ax",
	AccSg: "acem",
	GenSg: "acis",
	DatSg: "aci",
	AblSg: "ace",

	NomPl: "aces",
	AccPl: "aces",
	GenPl: "acum",
	DatPl: "acibus",
	AblPl: "acibus",
}

// radix, radicis
var ixEndings = CaseEndings{
	Name:   "ix",
	Gender: Feminine,

	NomSg: "ix",
	AccSg: "icem",
	GenSg: "icis",
	DatSg: "ici",
	AblSg: "ice",

	NomPl: "ices",
	AccPl: "ices",
	GenPl: "icum",
	DatPl: "icibus",
	AblPl: "icibus",
}

var yxEndings = CaseEndings{
	Name:   "yx",
	Gender: Feminine,

	NomSg: "yx",
	AccSg: "ycem",
	GenSg: "ycis",
	DatSg: "yci",
	AblSg: "yce",

	NomPl: "yces",
	AccPl: "yces",
	GenPl: "ycum",
	DatPl: "ycibus",
	AblPl: "ycibus",
}

var ysEndings = CaseEndings{
	Name:   "ys",
	Gender: Masculine,

	NomSg: "ys",
	AccSg: "ydem",
	GenSg: "ydis",
	DatSg: "ydi",
	AblSg: "yde",

	NomPl: "ydes",
	AccPl: "ydes",
	GenPl: "ydum",
	DatPl: "ydibus",
	AblPl: "ydibus",
}

var uxEndings = CaseEndings{
	Name:   "ux",
	Gender: Feminine,

	NomSg: "ux",
	AccSg: "ucem",
	GenSg: "ucis",
	DatSg: "uci",
	AblSg: "uce",

	NomPl: "uces",
	AccPl: "uces",
	GenPl: "ucum",
	DatPl: "ucibus",
	AblPl: "ucibus",
}

// phalanx, phalangis
var nxEndings = CaseEndings{
	Name:   "nx",
	Gender: Feminine,

	NomSg: "nx",
	AccSg: "ngem",
	GenSg: "ngis",
	DatSg: "ngi",
	AblSg: "nge",

	NomPl: "nges",
	AccPl: "nges",
	GenPl: "ngium",
	DatPl: "ngibus",
	AblPl: "ngibus",
}

var isEndings = CaseEndings{
	Name:   "is",
	Gender: Masculine,

	NomSg: "is",
	AccSg: "em",
	GenSg: "is",
	DatSg: "i",
	AblSg: "e",

	NomPl: "es",
	AccPl: "es",
	GenPl: "ium",
	DatPl: "ibus",
	AblPl: "ibus",
}

// vertex, verticis
var exEndings = CaseEndings{
	Name:   "ex",
	Gender: Masculine,

	NomSg: "ex",
	AccSg: "icem",
	GenSg: "icis",
	DatSg: "ici",
	AblSg: "ice",

	NomPl: "ices",
	AccPl: "ices",
	GenPl: "icum",
	DatPl: "icibus",
	AblPl: "icibus",
}

var eEndings = CaseEndings{
	Name:   "e",
	Gender: Neuter,

	NomSg: "e",
	AccSg: "e",
	GenSg: "is",
	DatSg: "i",
	AblSg: "i",

	NomPl: "ia",
	AccPl: "ia",
	GenPl: "ium",
	DatPl: "ibus",
	AblPl: "ibus",
}

// semen, seminis
var enEndings = CaseEndings{
	Name:   "en",
	Gender: Neuter,

	NomSg: "en",
	AccSg: "en",
	GenSg: "inis",
	DatSg: "ini",
	AblSg: "ine",

	NomPl: "ina",
	AccPl: "ina",
	GenPl: "inum",
	DatPl: "inibus",
	AblPl: "inibus",
}

// fifth declension
var esEndings = CaseEndings{
	Name:   "es",
	Gender: Feminine,

	NomSg: "es",
	AccSg: "em",
	GenSg: "ei",
	DatSg: "ei",
	AblSg: "e",

	NomPl: "es",
	AccPl: "es",
	GenPl: "erum",
	DatPl: "ebus",
	AblPl: "ebus",
}

// Greek neuters: trichoma, trichomatis
var maEndings = CaseEndings{
	Name:   "ma",
	Gender: Neuter,

	NomSg: "ma",
	AccSg: "ma",
	GenSg: "matis",
	DatSg: "mati",
	AblSg: "mate",

	NomPl: "mata",
	AccPl: "mata",
	GenPl: "matum",
	DatPl: "matibus",
	AblPl: "matibus",
}

// Adjective variants where the masculine or neuter paradigm diverges
// from the noun pattern with the same citation ending.

// comparative neuter: the noun -or paradigm has no -oria plural
var orAdjNeuterEndings = CaseEndings{
	Name:   "or-adj-neut",
	Gender: Neuter,

	NomSg: "or",
	AccSg: "or",
	GenSg: "oris",
	DatSg: "ori",
	AblSg: "ori",

	NomPl: "oria",
	AccPl: "oria",
	GenPl: "orium",
	DatPl: "oribus",
	AblPl: "oribus",
}

// participial -ns/-s stems: elegans, elegantis
var sEndings = CaseEndings{
	Name:   "s-third",
	Gender: Masculine,

	NomSg: "s",
	AccSg: "tem",
	GenSg: "tis",
	DatSg: "ti",
	AblSg: "te",

	NomPl: "tes",
	AccPl: "tes",
	GenPl: "tium",
	DatPl: "tibus",
	AblPl: "tibus",
}

var sAdjNeuterEndings = CaseEndings{
	Name:   "s-adj-neut",
	Gender: Neuter,

	NomSg: "s",
	AccSg: "s",
	GenSg: "tis",
	DatSg: "ti",
	AblSg: "te",

	NomPl: "tia",
	AccPl: "tia",
	GenPl: "tium",
	DatPl: "tibus",
	AblPl: "tibus",
}

// masculine of -er adjectives: the citation form keeps its ending
var erAdjMascEndings = CaseEndings{
	Name:   "er-adj-masc",
	Gender: Masculine,

	NomSg: "",
	AccSg: "um",
	GenSg: "i",
	DatSg: "o",
	AblSg: "o",

	NomPl: "i",
	AccPl: "os",
	GenPl: "orum",
	DatPl: "is",
	AblPl: "is",
}

// i-stem adjectives take -i in the ablative singular
var isAdjEndings = CaseEndings{
	Name:   "is-adj",
	Gender: Masculine,

	NomSg: "is",
	AccSg: "em",
	GenSg: "is",
	DatSg: "i",
	AblSg: "i",

	NomPl: "es",
	AccPl: "es",
	GenPl: "ium",
	DatPl: "ibus",
	AblPl: "ibus",
}

var exAdjEndings = CaseEndings{
	Name:   "ex-adj",
	Gender: Masculine,

	NomSg: "ex",
	AccSg: "icem",
	GenSg: "icis",
	DatSg: "ici",
	AblSg: "ici",

	NomPl: "ices",
	AccPl: "ices",
	GenPl: "icium",
	DatPl: "icibus",
	AblPl: "icibus",
}

var exAdjNeuterEndings = CaseEndings{
	Name:   "ex-adj-neut",
	Gender: Neuter,

	NomSg: "ex",
	AccSg: "ex",
	GenSg: "icis",
	DatSg: "ici",
	AblSg: "ici",

	NomPl: "icia",
	AccPl: "icia",
	GenPl: "icium",
	DatPl: "icibus",
	AblPl: "icibus",
}

// -oides adjectives: schoenoides, schoenoidis
var esAdjEndings = CaseEndings{
	Name:   "es-adj",
	Gender: Masculine,

	NomSg: "es",
	AccSg: "em",
	GenSg: "is",
	DatSg: "i",
	AblSg: "e",

	NomPl: "es",
	AccPl: "es",
	GenPl: "um",
	DatPl: "ibus",
	AblPl: "ibus",
}

var esAdjNeuterEndings = CaseEndings{
	Name:   "es-adj-neut",
	Gender: Neuter,

	NomSg: "es",
	AccSg: "em",
	GenSg: "is",
	DatSg: "i",
	AblSg: "e",

	NomPl: "es",
	AccPl: "es",
	GenPl: "um",
	DatPl: "ibus",
	AblPl: "ibus",
}

// twoLetterCatalog is scanned before oneLetterCatalog so that a two-letter
// citation ending always wins over a one-letter one sharing its last
// letter (trichoma is -ma, not -a). Order within a catalog is the
// declared priority.
var twoLetterCatalog = []*CaseEndings{
	&alEndings,
	&arEndings,
	&asEndings,
	&axEndings,
	&enEndings,
	&erEndings,
	&esEndings,
	&exEndings,
	&onEndings,
	&orEndings,
	&osEndings,
	&umEndings,
	&usEndings,
	&utEndings,
	&uxEndings,
	&maEndings,
	&yxEndings,
	&ysEndings,
	&nxEndings,
	&isEndings,
	&ixEndings,
}

var oneLetterCatalog = []*CaseEndings{
	&aEndings,
	&eEndings,
	&oEndings,
	&uEndings,
}

// nounCatalog is the full scan order used by GuessNoun.
var nounCatalog = append(append([]*CaseEndings{}, twoLetterCatalog...), oneLetterCatalog...)

// Catalog returns a copy of the noun declension patterns in scan order.
func Catalog() []CaseEndings {
	out := make([]CaseEndings, len(nounCatalog))
	for i, ce := range nounCatalog {
		out[i] = *ce
	}
	return out
}
