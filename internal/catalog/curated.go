package catalog

// CuratedCourse is one row of the curation table: the playlist id in its
// original case plus the locally authored description/category overlay.
// Membership here decides which playlists are offered as courses; the live
// API decides which of them are actually surfaced.
type CuratedCourse struct {
	ID          string
	Description string
	Category    Category
}

const defaultDescription = "Sem descrição"

// curatedPlaylists holds only valid, public YouTube playlists.
var curatedPlaylists = []CuratedCourse{
	{
		ID: "PLHz_AreHm4dlKP6QQCekuIPky1CiwmdI6",
		Description: "Python é uma linguagem moderna e versátil, usada por empresas como Google, YouTube e muitas outras. Neste curso, você aprenderá os fundamentos da programação Python de forma clara e objetiva, ideal para iniciantes.",
		Category: CategoryFundamentos,
	},
	{
		ID: "PLs5wTEi6ddhBsgqe6Rs5NBb6rKc9y4tNW",
		Description: "Curso completo de Engenharia de Dados com foco em Azure. Aprenda ETL, Data Lake, Data Warehouse, Azure Data Factory, Databricks e construa pipelines de dados profissionais.",
		Category: CategoryData,
	},
	{
		ID: "PL_m43UlJFjF5wecIJOybo82vEUlEioP9W",
		Description: "Aprenda Nuxt.js do zero e desenvolva aplicações web modernas com Vue.js. Do básico ao avançado, você aprenderá sobre renderização universal, SEO, middlewares e construirá um projeto real usando a API do Rick and Morty.",
		Category: CategoryFrontend,
	},
	{
		ID: "PLHz_AreHm4dlsK3Nr9GVvXCbpQyHQl1o1",
		Description: "Aprenda HTML5 e CSS3 do zero e crie sites responsivos e modernos. Curso completo para iniciantes que querem entrar no mundo do desenvolvimento web.",
		Category: CategoryFrontend,
	},
	{
		ID: "PLJ0AcghBBWSi6nK2CUkw9ngvwWB1gE8mL",
		Description: "Curso completo de TypeScript. Aprenda tipagem estática, interfaces, generics e como usar TypeScript em projetos reais para escrever código mais seguro.",
		Category: CategoryFundamentos,
	},
	{
		ID: "PLHz_AreHm4dm7ZULPAmadvNhH6vk9oNZA",
		Description: "Curso de Git e GitHub do básico ao avançado. Aprenda versionamento de código, branches, merge, pull requests e colaboração em projetos open source.",
		Category: CategoryDevOps,
	},
	{
		ID: "PLpaKFn4Q4GMOBAeqC1S5_Fna_Y5XaOQS2",
		Description: "Curso completo de Linguagem C para iniciantes. Aprenda a base da programação com uma das linguagens mais importantes da história da computação.",
		Category: CategoryFundamentos,
	},
	{
		ID: "PL62G310vn6nFIsOCC0H-C2infYgwm8SWW",
		Description: "Curso completo de Spring Boot com Java. Aprenda a criar APIs REST profissionais, segurança, JPA e boas práticas de desenvolvimento.",
		Category: CategoryBackend,
	},
	{
		ID: "PLf-O3X2-mxDmXQU-mJVgeaSL7Rtejvv0S",
		Description: "Curso de AWS para desenvolvedores. Aprenda EC2, S3, Lambda, RDS e como fazer deploy de aplicações na nuvem Amazon.",
		Category: CategoryDevOps,
	},
	{
		ID: "PLHz_AreHm4dkcVCk2Bn_fdVQ81Fkrh6WT",
		Description: "Curso de JavaScript com foco em DOM, eventos e interatividade. Aprenda a manipular páginas web de forma dinâmica.",
		Category: CategoryFrontend,
	},
	{
		ID: "PLHz_AreHm4dk_nZHmxxf_J0WRAqy5Czye",
		Description: "Curso de PHP moderno para iniciantes. Aprenda a criar sistemas web dinâmicos com uma das linguagens mais utilizadas no backend.",
		Category: CategoryBackend,
	},
	{
		ID: "PLHz_AreHm4dlAnJ_jJtV29RFxnPHDuk9o",
		Description: "Curso de Photoshop CC completo. Aprenda edição de imagens, manipulação, efeitos e design gráfico profissional.",
		Category: CategoryFrontend,
	},
	{
		ID: "PL85ITvJ7FLoiuaKgHFYgrhZDwXOUEaxWI",
		Description: "Maratona Discover da Rocketseat. Aprenda desenvolvimento web do zero com HTML, CSS e JavaScript de forma prática.",
		Category: CategoryFrontend,
	},
	{
		ID: "PLMdYygf53DP5SVQQrkKCVWDS0TwYLVitL",
		Description: "Curso completo de Ciência da Computação. Fundamentos, algoritmos, estruturas de dados e conceitos essenciais para programadores.",
		Category: CategoryFundamentos,
	},
	{
		ID: "PLVc5bWuiFQ8GgKm5m0cZE6E02amJho94o",
		Description: "Dicionário do Programador. Aprenda os principais termos e conceitos de programação de forma clara e objetiva.",
		Category: CategoryFundamentos,
	},
	{
		ID: "PL62G310vn6nF3gssjqfCKLpTK2sZJ_a_1",
		Description: "Curso de Java completo e atualizado. POO, collections, streams, lambdas e desenvolvimento de aplicações robustas.",
		Category: CategoryFundamentos,
	},
	{
		ID: "PLillGF-RfqbYeckUaD1z6nviTp31GLTH8",
		Description: "Modern JavaScript from the Beginning. Complete course covering ES6+, async/await, OOP, and real-world projects.",
		Category: CategoryFundamentos,
	},
	{
		ID: "PLillGF-RfqbZTASqIqdvm1R5mLrQq79CU",
		Description: "Node.js crash course and tutorials. Build REST APIs, work with Express, MongoDB and deploy applications.",
		Category: CategoryBackend,
	},
	{
		ID: "PLillGF-RfqbaEmlPcX5e_ejaK7Y5MydkW",
		Description: "React Front to Back course. Learn React hooks, context API, Redux and build real-world applications.",
		Category: CategoryFrontend,
	},
	{
		ID: "PL4cUxeGkcC9gZD-Tvwfod2gaISzfRiP9d",
		Description: "Vue.js 3 complete tutorial. Learn composition API, Vuex, Vue Router and build modern web applications.",
		Category: CategoryFrontend,
	},
	{
		ID: "PL4cUxeGkcC9i_aLkr62adUTJi53y7OjOf",
		Description: "Flutter tutorial for beginners. Build beautiful mobile apps for iOS and Android with a single codebase.",
		Category: CategoryMobile,
	},
	{
		ID: "PL4cUxeGkcC9jLYyp2Aoh6hcWuxFDX6PBJ",
		Description: "Next.js crash course. Learn server-side rendering, static generation, and build production-ready React apps.",
		Category: CategoryFrontend,
	},
	{
		ID: "PL0vfts4VzfNiI1BsIK5u7LpPaIDKMJIDN",
		Description: "Fireship tutorials on modern web development. Quick, practical guides on the latest technologies and frameworks.",
		Category: CategoryFrontend,
	},
	{
		ID: "PLnDvRpP8BnezfJcfiClWskFOLODeqI_Ft",
		Description: "Curso de Python completo e gratuito. Do básico ao avançado com projetos práticos e aplicações reais.",
		Category: CategoryFundamentos,
	},
	{
		ID: "PLnDvRpP8BneysKU8KivhnrVaKpILD3gZ6",
		Description: "Curso completo de Docker. Aprenda containers, imagens, compose, volumes e orquestração de aplicações.",
		Category: CategoryDevOps,
	},
	{
		ID: "PLbIBj8vQhvm0ayQsrhEf-7-8JAj-MwmPr",
		Description: "Curso de Python 3 do básico ao avançado com projetos reais. POO, Django, automação e muito mais.",
		Category: CategoryFundamentos,
	},
	{
		ID: "PLbIBj8vQhvm2WT-pjGS5x7zUzmh4VgvRk",
		Description: "Curso de JavaScript e TypeScript do básico ao avançado. Aprenda as duas linguagens mais importantes do frontend.",
		Category: CategoryFundamentos,
	},
	{
		ID: "PLHz_AreHm4dmSj0MHol_aoNYCSGFqvfXV",
		Description: "Curso de Algoritmos e Lógica de Programação. Aprenda os fundamentos essenciais antes de qualquer linguagem.",
		Category: CategoryFundamentos,
	},
	{
		ID: "PLucm8g_ezqNp92MmkF9p_cj4yhT-fCTl7",
		Description: "Curso de Linux completo. Aprenda linha de comando, administração de sistemas e gerenciamento de servidores.",
		Category: CategoryDevOps,
	},
	{
		ID: "PLwXQLZ3FdTVF9Y0RbsuN54XYP7D0dZIlR",
		Description: "Curso de Desenvolvimento Web completo. HTML, CSS, JavaScript, responsividade e boas práticas de frontend.",
		Category: CategoryFrontend,
	},
}

// CuratedPlaylists returns a copy of the curation table.
func CuratedPlaylists() []CuratedCourse {
	out := make([]CuratedCourse, len(curatedPlaylists))
	copy(out, curatedPlaylists)
	return out
}
