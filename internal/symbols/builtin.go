package symbols

// builtin maps a command (without its trigger) to its Unicode value.
var builtin = map[string]string{
	// Greek letters
	"alpha":      "α",
	"beta":       "β",
	"gamma":      "γ",
	"delta":      "δ",
	"epsilon":    "ϵ",
	"varepsilon": "ε",
	"zeta":       "ζ",
	"eta":        "η",
	"theta":      "θ",
	"vartheta":   "ϑ",
	"iota":       "ι",
	"kappa":      "κ",
	"varkappa":   "ϰ",
	"lambda":     "λ",
	"mu":         "μ",
	"nu":         "ν",
	"xi":         "ξ",
	"omicron":    "ο",
	"pi":         "π",
	"varpi":      "ϖ",
	"rho":        "ρ",
	"varrho":     "ϱ",
	"sigma":      "σ",
	"varsigma":   "ς",
	"tau":        "τ",
	"upsilon":    "υ",
	"phi":        "ϕ",
	"varphi":     "φ",
	"chi":        "χ",
	"psi":        "ψ",
	"omega":      "ω",
	"Gamma":      "Γ",
	"Delta":      "Δ",
	"Theta":      "Θ",
	"Lambda":     "Λ",
	"Xi":         "Ξ",
	"Pi":         "Π",
	"Sigma":      "Σ",
	"Upsilon":    "Υ",
	"Phi":        "Φ",
	"Psi":        "Ψ",
	"Omega":      "Ω",
	"digamma":    "ϝ",
	// Binary operators
	"pm":              "±",
	"mp":              "∓",
	"times":           "×",
	"div":             "÷",
	"cdot":            "⋅",
	"ast":             "∗",
	"star":            "⋆",
	"circ":            "∘",
	"bullet":          "∙",
	"oplus":           "⊕",
	"ominus":          "⊖",
	"otimes":          "⊗",
	"oslash":          "⊘",
	"odot":            "⊙",
	"cap":             "∩",
	"cup":             "∪",
	"uplus":           "⊎",
	"sqcap":           "⊓",
	"sqcup":           "⊔",
	"wedge":           "∧",
	"land":            "∧",
	"vee":             "∨",
	"lor":             "∨",
	"setminus":        "∖",
	"wr":              "≀",
	"diamond":         "⋄",
	"bigtriangleup":   "△",
	"bigtriangledown": "▽",
	"triangleleft":    "◁",
	"triangleright":   "▷",
	"amalg":           "⨿",
	"dagger":          "†",
	"ddagger":         "‡",
	"lhd":             "⊲",
	"rhd":             "⊳",
	"unlhd":           "⊴",
	"unrhd":           "⊵",
	"boxplus":         "⊞",
	"boxtimes":        "⊠",
	"ltimes":          "⋉",
	"rtimes":          "⋊",
	// Large operators
	"sum":       "∑",
	"prod":      "∏",
	"coprod":    "∐",
	"int":       "∫",
	"iint":      "∬",
	"iiint":     "∭",
	"oint":      "∮",
	"bigcap":    "⋂",
	"bigcup":    "⋃",
	"bigvee":    "⋁",
	"bigwedge":  "⋀",
	"bigoplus":  "⨁",
	"bigotimes": "⨂",
	"bigodot":   "⨀",
	"biguplus":  "⨄",
	// Relations
	"leq":        "≤",
	"le":         "≤",
	"geq":        "≥",
	"ge":         "≥",
	"neq":        "≠",
	"ne":         "≠",
	"equiv":      "≡",
	"approx":     "≈",
	"cong":       "≅",
	"sim":        "∼",
	"simeq":      "≃",
	"propto":     "∝",
	"ll":         "≪",
	"gg":         "≫",
	"prec":       "≺",
	"succ":       "≻",
	"preceq":     "⪯",
	"succeq":     "⪰",
	"subset":     "⊂",
	"supset":     "⊃",
	"subseteq":   "⊆",
	"supseteq":   "⊇",
	"nsubseteq":  "⊈",
	"sqsubseteq": "⊑",
	"sqsupseteq": "⊒",
	"in":         "∈",
	"notin":      "∉",
	"ni":         "∋",
	"vdash":      "⊢",
	"dashv":      "⊣",
	"models":     "⊨",
	"perp":       "⊥",
	"mid":        "∣",
	"nmid":       "∤",
	"parallel":   "∥",
	"asymp":      "≍",
	"doteq":      "≐",
	"bowtie":     "⋈",
	"triangleq":  "≜",
	"coloneqq":   "≔",
	"leqslant":   "⩽",
	"geqslant":   "⩾",
	"lessgtr":    "≶",
	"nleq":       "≰",
	"ngeq":       "≱",
	// Arrows
	"leftarrow":          "←",
	"gets":               "←",
	"rightarrow":         "→",
	"to":                 "→",
	"uparrow":            "↑",
	"downarrow":          "↓",
	"leftrightarrow":     "↔",
	"updownarrow":        "↕",
	"Leftarrow":          "⇐",
	"Rightarrow":         "⇒",
	"Uparrow":            "⇑",
	"Downarrow":          "⇓",
	"Leftrightarrow":     "⇔",
	"iff":                "⟺",
	"implies":            "⟹",
	"impliedby":          "⟸",
	"mapsto":             "↦",
	"longmapsto":         "⟼",
	"longleftarrow":      "⟵",
	"longrightarrow":     "⟶",
	"longleftrightarrow": "⟷",
	"Longleftarrow":      "⟸",
	"Longrightarrow":     "⟹",
	"hookleftarrow":      "↩",
	"hookrightarrow":     "↪",
	"leftharpoonup":      "↼",
	"rightharpoonup":     "⇀",
	"rightleftharpoons":  "⇌",
	"nearrow":            "↗",
	"searrow":            "↘",
	"swarrow":            "↙",
	"nwarrow":            "↖",
	"leadsto":            "⇝",
	"twoheadrightarrow":  "↠",
	"rightarrowtail":     "↣",
	// Logic and miscellany
	"forall":        "∀",
	"exists":        "∃",
	"nexists":       "∄",
	"neg":           "¬",
	"lnot":          "¬",
	"top":           "⊤",
	"bot":           "⊥",
	"emptyset":      "∅",
	"varnothing":    "∅",
	"infty":         "∞",
	"partial":       "∂",
	"nabla":         "∇",
	"aleph":         "ℵ",
	"beth":          "ℶ",
	"hbar":          "ℏ",
	"ell":           "ℓ",
	"wp":            "℘",
	"Re":            "ℜ",
	"Im":            "ℑ",
	"angle":         "∠",
	"measuredangle": "∡",
	"triangle":      "△",
	"square":        "□",
	"blacksquare":   "■",
	"therefore":     "∴",
	"because":       "∵",
	"prime":         "′",
	"dprime":        "″",
	"sqrt":          "√",
	"cbrt":          "∛",
	"surd":          "√",
	"degree":        "°",
	"checkmark":     "✓",
	"flat":          "♭",
	"natural":       "♮",
	"sharp":         "♯",
	"clubsuit":      "♣",
	"diamondsuit":   "♢",
	"heartsuit":     "♡",
	"spadesuit":     "♠",
	"ldots":         "…",
	"cdots":         "⋯",
	"vdots":         "⋮",
	"ddots":         "⋱",
	"langle":        "⟨",
	"rangle":        "⟩",
	"lceil":         "⌈",
	"rceil":         "⌉",
	"lfloor":        "⌊",
	"rfloor":        "⌋",
	"llbracket":     "⟦",
	"rrbracket":     "⟧",
	"|":             "‖",
	"Vert":          "‖",
	"qed":           "∎",
	"copyright":     "©",
	"S":             "§",
	"P":             "¶",
	"euro":          "€",
	"pounds":        "£",
	"yen":           "¥",
	// Number sets
	"N":    "ℕ",
	"Z":    "ℤ",
	"Q":    "ℚ",
	"R":    "ℝ",
	"C":    "ℂ",
	"H":    "ℍ",
	"BbbN": "ℕ",
	"BbbZ": "ℤ",
	"BbbQ": "ℚ",
	"BbbR": "ℝ",
	"BbbC": "ℂ",
	// Vulgar fractions
	"frac12": "½",
	"frac13": "⅓",
	"frac23": "⅔",
	"frac14": "¼",
	"frac34": "¾",
	"frac15": "⅕",
	"frac18": "⅛",
	// ASCII shorthands
	"<=":  "≤",
	">=":  "≥",
	"!=":  "≠",
	"->":  "→",
	"<-":  "←",
	"=>":  "⇒",
	"<=>": "⇔",
	"<->": "↔",
	"|->": "↦",
	"...": "…",
	"+-":  "±",
	"-+":  "∓",
	":=":  "≔",
	"~~":  "≈",
	"===": "≡",
	"**":  "∗",
}
