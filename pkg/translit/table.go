package translit

// mapping associates a canonical ASCII replacement with the Unicode
// sequences that fold to it.
type mapping struct {
	ascii    string
	variants []string
}

// foldTable is the canonical transliteration table. It is a curated
// best-effort subset, not full Unicode coverage. Entry order is the
// enumeration order of the fold: when variants overlap, the entry that
// appears first wins, so the order below must stay stable.
var foldTable = []mapping{
	{"0", []string{"°", "₀", "۰", "０"}},
	{"1", []string{"¹", "₁", "۱", "１"}},
	{"2", []string{"²", "₂", "۲", "２"}},
	{"3", []string{"³", "₃", "۳", "３"}},
	{"4", []string{"⁴", "₄", "۴", "٤", "４"}},
	{"5", []string{"⁵", "₅", "۵", "٥", "５"}},
	{"6", []string{"⁶", "₆", "۶", "٦", "６"}},
	{"7", []string{"⁷", "₇", "۷", "７"}},
	{"8", []string{"⁸", "₈", "۸", "８"}},
	{"9", []string{"⁹", "₉", "۹", "９"}},

	{"a", []string{"à", "á", "ả", "ã", "ạ", "ă", "ắ", "ằ", "ẳ", "ẵ", "ặ", "â", "ấ", "ầ", "ẩ", "ẫ", "ậ", "ā", "ą", "å", "α", "ά", "ἀ", "ἁ", "ὰ", "ᾶ", "а"}},
	{"b", []string{"б", "β", "ب"}},
	{"c", []string{"ç", "ć", "č", "ĉ", "ċ"}},
	{"d", []string{"ď", "ð", "đ", "ƌ", "δ", "д", "ض", "د"}},
	{"e", []string{"é", "è", "ẻ", "ẽ", "ẹ", "ê", "ế", "ề", "ể", "ễ", "ệ", "ë", "ē", "ę", "ě", "ĕ", "ė", "ε", "έ", "е", "э", "є", "ə"}},
	{"f", []string{"ф", "φ", "ف"}},
	{"g", []string{"ĝ", "ğ", "ġ", "ģ", "г", "ґ", "γ", "گ"}},
	{"h", []string{"ĥ", "ħ", "η", "ή", "ح", "ه"}},
	{"i", []string{"í", "ì", "ỉ", "ĩ", "ị", "î", "ï", "ī", "ĭ", "į", "ı", "ι", "ί", "ϊ", "и", "ы", "і", "ي"}},
	{"j", []string{"ĵ", "ј"}},
	{"k", []string{"ķ", "ĸ", "к", "κ", "ق", "ك"}},
	{"l", []string{"ł", "ľ", "ĺ", "ļ", "ŀ", "л", "λ", "ل"}},
	{"m", []string{"м", "μ", "م"}},
	{"n", []string{"ñ", "ń", "ň", "ņ", "ŉ", "ŋ", "ν", "н", "ن"}},
	{"o", []string{"ó", "ò", "ỏ", "õ", "ọ", "ô", "ố", "ồ", "ổ", "ỗ", "ộ", "ơ", "ớ", "ờ", "ở", "ỡ", "ợ", "ø", "ō", "ő", "ŏ", "ο", "ό", "о"}},
	{"p", []string{"п", "π", "پ"}},
	{"r", []string{"ŕ", "ř", "ŗ", "р", "ρ", "ر"}},
	{"s", []string{"ś", "š", "ş", "ŝ", "ș", "с", "σ", "ς", "س", "ص"}},
	{"t", []string{"ť", "ţ", "ț", "т", "τ", "ت", "ط"}},
	{"u", []string{"ú", "ù", "ủ", "ũ", "ụ", "ư", "ứ", "ừ", "ử", "ữ", "ự", "û", "ū", "ů", "ű", "ŭ", "ų", "µ", "υ", "ύ", "ϋ", "ΰ", "у"}},
	{"v", []string{"в"}},
	{"w", []string{"ŵ", "ω", "ώ", "و"}},
	{"x", []string{"χ", "ξ"}},
	{"y", []string{"ý", "ỳ", "ỷ", "ỹ", "ỵ", "ÿ", "ŷ", "й"}},
	{"z", []string{"ź", "ž", "ż", "з", "ζ", "ز"}},

	{"aa", []string{"ع"}},
	{"ae", []string{"ä", "æ", "ǽ"}},
	{"ch", []string{"ч", "چ"}},
	{"dj", []string{"ђ"}},
	{"dz", []string{"џ"}},
	{"gh", []string{"غ"}},
	{"kh", []string{"х", "خ"}},
	{"lj", []string{"љ"}},
	{"nj", []string{"њ"}},
	{"oe", []string{"ö", "œ"}},
	{"ps", []string{"ψ"}},
	{"sh", []string{"ш", "ش"}},
	{"shch", []string{"щ"}},
	{"ss", []string{"ß"}},
	{"th", []string{"þ", "ث", "ذ", "ظ"}},
	{"ts", []string{"ц"}},
	{"ue", []string{"ü"}},
	{"ya", []string{"я"}},
	{"yu", []string{"ю"}},
	{"zh", []string{"ж", "ژ"}},

	{"A", []string{"Á", "À", "Ả", "Ã", "Ạ", "Ă", "Ắ", "Ằ", "Ẳ", "Ẵ", "Ặ", "Â", "Ấ", "Ầ", "Ẩ", "Ẫ", "Ậ", "Å", "Ā", "Ą", "Α", "Ά", "А"}},
	{"B", []string{"Б", "Β"}},
	{"C", []string{"Ç", "Ć", "Č", "Ĉ", "Ċ"}},
	{"D", []string{"Ď", "Ð", "Đ", "Δ", "Д"}},
	{"E", []string{"É", "È", "Ẻ", "Ẽ", "Ẹ", "Ê", "Ế", "Ề", "Ể", "Ễ", "Ệ", "Ë", "Ē", "Ę", "Ě", "Ĕ", "Ė", "Ε", "Έ", "Е", "Э", "Є", "Ə"}},
	{"F", []string{"Ф", "Φ"}},
	{"G", []string{"Ğ", "Ġ", "Ģ", "Ĝ", "Γ", "Г", "Ґ"}},
	{"H", []string{"Ĥ", "Ħ", "Η", "Ή"}},
	{"I", []string{"Í", "Ì", "Ỉ", "Ĩ", "Ị", "Î", "Ï", "Ī", "Ĭ", "Į", "İ", "Ι", "Ί", "Ϊ", "И", "Ы", "І"}},
	{"J", []string{"Ĵ", "Ј"}},
	{"K", []string{"Ķ", "Κ", "К"}},
	{"L", []string{"Ł", "Ľ", "Ĺ", "Ļ", "Ŀ", "Λ", "Л"}},
	{"M", []string{"М", "Μ"}},
	{"N", []string{"Ñ", "Ń", "Ň", "Ņ", "Ŋ", "Ν", "Н"}},
	{"O", []string{"Ó", "Ò", "Ỏ", "Õ", "Ọ", "Ô", "Ố", "Ồ", "Ổ", "Ỗ", "Ộ", "Ơ", "Ớ", "Ờ", "Ở", "Ỡ", "Ợ", "Ø", "Ō", "Ő", "Ŏ", "Ο", "Ό", "О"}},
	{"P", []string{"П", "Π"}},
	{"R", []string{"Ŕ", "Ř", "Ŗ", "Р", "Ρ"}},
	{"S", []string{"Ś", "Š", "Ş", "Ŝ", "Ș", "С", "Σ"}},
	{"T", []string{"Ť", "Ţ", "Ț", "Т", "Τ"}},
	{"U", []string{"Ú", "Ù", "Ủ", "Ũ", "Ụ", "Ư", "Ứ", "Ừ", "Ử", "Ữ", "Ự", "Û", "Ū", "Ů", "Ű", "Ŭ", "Ų", "Υ", "Ύ", "У"}},
	{"V", []string{"В"}},
	{"W", []string{"Ŵ", "Ω", "Ώ"}},
	{"X", []string{"Χ", "Ξ"}},
	{"Y", []string{"Ý", "Ỳ", "Ỷ", "Ỹ", "Ỵ", "Ÿ", "Ŷ", "Й"}},
	{"Z", []string{"Ź", "Ž", "Ż", "З", "Ζ"}},

	{"AE", []string{"Ä", "Æ", "Ǽ"}},
	{"Ch", []string{"Ч"}},
	{"Dj", []string{"Ђ"}},
	{"Dz", []string{"Џ"}},
	{"Kh", []string{"Х"}},
	{"Lj", []string{"Љ"}},
	{"Nj", []string{"Њ"}},
	{"Oe", []string{"Ö", "Œ"}},
	{"Ps", []string{"Ψ"}},
	{"Sh", []string{"Ш"}},
	{"Shch", []string{"Щ"}},
	{"Ss", []string{"ẞ"}},
	{"Th", []string{"Þ"}},
	{"Ts", []string{"Ц"}},
	{"Ya", []string{"Я"}},
	{"Yu", []string{"Ю"}},
	{"Zh", []string{"Ж"}},

	{"(c)", []string{"©"}},
	{"(r)", []string{"®"}},
	{"(tm)", []string{"™"}},
	{" ", []string{" ", " ", " ", "　"}},
}
