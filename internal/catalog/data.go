package catalog

var origins = []OriginOption{
	{
		ID:             OriginThai,
		Name:           "Thai Art",
		NameTH:         "ไทย (Thai Art)",
		PromptModifier: "Thai Contemporary Art style (Neo-Traditional), **Mystical atmosphere with glowing Golden Thai Yantra (Sak Yant) scripts floating in background**, 3D volumetric depth, soft shading, hyper-realistic divine skin texture, intricate gold Lai Thai patterns, glorious Ayutthaya temple aesthetics, floating in celestial space, NOT flat 2D mural, dimensional lighting",
		Flag:           "🇹🇭",
		FlagCode:       "th",
	},
	{
		ID:             OriginIndia,
		Name:           "Indian Art",
		NameTH:         "อินเดีย (Indian Art)",
		PromptModifier: "Indian Art in Raja Ravi Varma style combined with Modern Digital Devotional Art. Hyper-realistic oil painting aesthetic, glowing divine skin, incredibly detailed gold jewelry, soft cinematic lighting, magical atmosphere, vibrant and rich colors",
		Flag:           "🇮🇳",
		FlagCode:       "in",
	},
	{
		ID:             OriginChina,
		Name:           "Chinese Art",
		NameTH:         "จีน (Chinese Art)",
		PromptModifier: "Chinese Traditional Gongbi and Ink Wash painting style, golden dragon motifs, Feng Shui aesthetics, Jade textures, Imperial Palace atmosphere",
		Flag:           "🇨🇳",
		FlagCode:       "cn",
	},
	{
		ID:             OriginJapan,
		Name:           "Japanese Art",
		NameTH:         "ญี่ปุ่น (Japanese Art)",
		PromptModifier: "Japanese Traditional Ukiyo-e art style, woodblock print aesthetics, cherry blossom atmosphere, Zen minimalism, elegant Shinto shrine details",
		Flag:           "🇯🇵",
		FlagCode:       "jp",
	},
	{
		ID:             OriginNepal,
		Name:           "Tibetan Art",
		NameTH:         "ทิเบต (Tibetan Art)",
		PromptModifier: "Nepalese Traditional Thangka art style, highly detailed mandala backgrounds, Tibetan buddhism aesthetics, deep spiritual tones, Himalayan heritage",
		Flag:           "🇳🇵",
		FlagCode:       "np",
	},
}

var styles = []StyleOption{
	{
		ID:             StyleLuckystation,
		Name:           "Luckystation (Signature)",
		NameTH:         "ลัคกี้สเตชั่น (เอกลักษณ์)",
		Description:    "Unique, elegant, magical aura.",
		DescriptionTH:  "สวยหรู ดูแพง มีมนต์ขลัง",
		PromptModifier: "Luckystation Signature Style, The pinnacle of Divine Digital Art, Hyper-realistic 3D volumetric rendering, Glowing golden aura, Crystal-clear divine skin, Floating magical particles and Yantra scripts, Cinematic lighting with god rays, Dreamy pastel and gold color palette, Soft focus background, Masterpiece, 8k, Unreal Engine 5 style, High Gloss finish",
		Icon:           "💎",
		Color:          "from-indigo-400 via-purple-500 to-pink-500",
	},
	{
		ID:             StyleStandard,
		Name:           "Standard (Realistic)",
		NameTH:         "มาตรฐาน (สมจริง)",
		Description:    "Sharp focus, natural light, photorealistic.",
		DescriptionTH:  "ภาพถ่ายสมจริง แสงธรรมชาติ คมชัด",
		PromptModifier: "Hyper-realistic photography style, Natural lighting, 8k resolution, Highly detailed, Sharp focus, True to life colors, Cinematic composition, Depth of field, Photorealistic, Professional photography, Clear image, No special effects, No heavy artistic filter",
		Icon:           "📷",
		Color:          "from-slate-500 to-zinc-600",
	},
	{
		ID:             StyleSakYant,
		Name:           "Sak Yant (Tattoo)",
		NameTH:         "ลายสักยันต์ (Sak Yant)",
		Description:    "Black ink, sacred geometry, powerful.",
		DescriptionTH:  "ลายเส้นยันต์ไทย ขลัง ทรงพลัง",
		PromptModifier: "Traditional Thai Sak Yant tattoo design, Black ink on white background, 2D flat vector line art, Ancient Khmer script patterns, Unalome symbols, Geometric yantra structure, Tattoo flash style, No shading, High contrast, clean lines",
		Icon:           "✒️",
		Color:          "from-slate-600 to-stone-800",
	},
	{
		ID:             StyleSacredDeity,
		Name:           "Golden Deity",
		NameTH:         "เทพเจ้าทองคำ",
		Description:    "Radiant skin, celestial aura, grand.",
		DescriptionTH:  "ผิวกายทองคำ เปล่งประกาย บารมีสูงส่ง",
		PromptModifier: "Sacred Deity seated on grand lotus throne, radiant golden aura, intricate jewelry, ethereal celestial background with clouds and light rays, Three-dimensional depth, soft volumetric lighting, hyper-realistic, 8k, masterpiece",
		Icon:           "✨",
		Color:          "from-yellow-400 to-amber-600",
	},
	{
		ID:             StyleChibi,
		Name:           "Cute Chibi",
		NameTH:         "เบบี้คิวท์ (Chibi)",
		Description:    "Adorable, pastel colors, soft.",
		DescriptionTH:  "น่ารักปุ๊กปิ๊ก สีพาสเทล สดใส",
		PromptModifier: "Super cute Chibi style, Baby version, Big sparkling eyes, Soft pastel colors (Pink, Blue, Lavender), Flat Vector Illustration, Fluffy clouds background, Kawaii aesthetic, 2D art, dreamy atmosphere",
		Icon:           "👼",
		Color:          "from-pink-300 to-purple-300",
	},
	{
		ID:             StyleArtmulet,
		Name:           "Artmulet (Amulet)",
		NameTH:         "อาร์ตมูเล็ต (วัตถุมงคล)",
		Description:    "3D sculpture, macro shot, sacred metal.",
		DescriptionTH:  "งานปั้น 3D เหมือนจริง เนื้อโลหะศักดิ์สิทธิ์",
		PromptModifier: "Macro photography of a sacred golden amulet, high-relief 3D sculpture, chiaroscuro studio lighting with rim light to reveal details, sharp details, depth of field, pure black background, sacred collectible, dimensional, realistic material rendering",
		Icon:           "🗿",
		Color:          "from-slate-400 to-amber-200",
	},
	{
		ID:             "thai-literature",
		Name:           "Literature Art",
		NameTH:         "จิตรกรรมไทย (Literature)",
		Description:    "Classic mural style, intricate lines.",
		DescriptionTH:  "ลายเส้นจิตรกรรมฝาผนัง วิจิตรบรรจง",
		PromptModifier: "Thai literature art style, Ramakien mural painting aesthetics, delicate gold sharp lines, intricate ancient Thai patterns, exquisite craftsmanship, classic masterpiece, sharp details, high detailed",
		Icon:           "📜",
		Color:          "from-pink-500 to-rose-700",
	},
	{
		ID:             "mystic-forest",
		Name:           "Mystic Forest",
		NameTH:         "ป่าหิมพานต์ (Mystic)",
		Description:    "Magical woods, glowing plants, deep.",
		DescriptionTH:  "ป่าลึกลับ พืชเรืองแสง มนตร์ตรา",
		PromptModifier: "Mystical forest setting, bioluminescent plants, ancient mystical trees, deep green and purple tones, magical fog, mysterious atmosphere, ultra-detailed nature",
		Icon:           "🌿",
		Color:          "from-emerald-400 to-teal-700",
	},
	{
		ID:             "dark-sorcery",
		Name:           "Dark Sorcery",
		NameTH:         "มนตร์ดำ (Dark Arts)",
		Description:    "Black magic, shadows, glowing runes.",
		DescriptionTH:  "สายดาร์ก ดุดัน น่าเกรงขาม",
		PromptModifier: "Dark mystical arts, **Heavy floating Thai Sak Yant runes in gold and red**, black magic atmosphere, smoke and shadows, obsidian textures, dramatic rim lighting, ominous and powerful",
		Icon:           "🌑",
		Color:          "from-purple-500 to-indigo-900",
	},
	{
		ID:             "naga-king",
		Name:           "Naga King",
		NameTH:         "นาคราช (Naga)",
		Description:    "Iridescent scales, underwater palace.",
		DescriptionTH:  "เกล็ดสีรุ้ง วังบาดาล ทรงอำนาจ",
		PromptModifier: "Majestic Naga King or Dragon, iridescent scales, flowing water elements, underwater palace background, glowing eyes, divine aura, mythical art style",
		Icon:           "🐉",
		Color:          "from-cyan-400 to-blue-700",
	},
	{
		ID:             "lucky-charm",
		Name:           "Clay Charm",
		NameTH:         "พระเนื้อดิน (Clay)",
		Description:    "Ancient clay, gold leaf, macro.",
		DescriptionTH:  "เนื้อดินเผาโบราณ ปิดทอง ขลัง",
		PromptModifier: "Macro photography of a sacred amulet, cracked clay texture, gold leaf application, ancient inscriptions, soft bokeh background, spiritual energy",
		Icon:           "🔮",
		Color:          "from-orange-400 to-red-600",
	},
}

var materials = []MaterialOption{
	{
		ID:             "gold",
		Name:           "Solid Gold",
		NameTH:         "ทองคำแท้ (Solid Gold)",
		PromptModifier: "Real Solid 24k Gold material, highly polished surface, intense specular highlights, realistic metallic reflection, heavy gold weight, expensive craftsmanship, not plastic, not yellow paint, authentic gold texture, divine wealth aesthetic",
		Color:          "from-yellow-300 to-yellow-600",
	},
	{
		ID:             "bronze",
		Name:           "Aged Bronze",
		NameTH:         "สัมฤทธิ์โบราณ (Bronze)",
		PromptModifier: "Dark Bronze material with Green Patina (verdigris) in crevices, ancient weathered metal, sacred oxidized texture, antique finish",
		Color:          "from-amber-700 to-stone-800",
	},
	{
		ID:             "silver",
		Name:           "Sterling Silver",
		NameTH:         "เงินแท้ (Silver)",
		PromptModifier: "Polished Sterling Silver, mystical cool tone, intricate engraving details, moonlight reflection",
		Color:          "from-slate-300 to-slate-500",
	},
	{
		ID:             "jade",
		Name:           "Green Jade",
		NameTH:         "หยกเขียว (Jade)",
		PromptModifier: "Translucent Green Jade, sub-surface scattering, glowing from within, smooth polished stone, serenity",
		Color:          "from-emerald-400 to-emerald-700",
	},
	{
		ID:             "black-metal",
		Name:           "Black Metal",
		NameTH:         "นิลกาฬ (Black Metal)",
		PromptModifier: "Matte Black Metal, Obsidian, gold leaf accents, powerful dark aura, aggressive styling",
		Color:          "from-gray-700 to-black",
	},
	{
		ID:             "mixed",
		Name:           "3K (Mixed)",
		NameTH:         "สามกษัตริย์ (3K)",
		PromptModifier: "Mixed Gold Silver and Rose Gold (3 Kings), tri-color metallic, intricate luxury detail",
		Color:          "from-yellow-200 via-pink-300 to-slate-300",
	},
}
